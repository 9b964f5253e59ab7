// Package logtail reads the tail of Marquee's diagnostic log.
//
// Search failures never reach the search screen; they are written to the log
// file configured by config.Config.LogFile. The diagnostics overlay calls Read
// to show the most recent lines and Classify to color the failures.
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//	if err != nil {
//		log.Printf("failed to read log: %v", err)
//	}
//
// Read keeps a ring buffer of maxLines entries, so memory stays bounded no
// matter how large the file grows. Missing files return nil, nil.
package logtail
