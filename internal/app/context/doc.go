// Package context stages multi-step writes for a single request and rolls
// back the steps already applied when a later one fails.
//
//	rc := appctx.New(ctx)
//	_ = rc.AddAction(&saveReport{...})
//	_ = rc.AddAction(&attachReport{...})
//
//	if err := rc.Commit(ctx); err != nil {
//	    // saveReport has been rolled back
//	}
package context
