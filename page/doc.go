// Package page is an in-memory document for the motion engine: a tree of
// tagged nodes with attributes, classes, inline style and text, laid out in
// absolute page coordinates and seen through a scrollable viewport.
//
// It implements every target interface the engine needs ([motion.TextTarget],
// [motion.StyleTarget], [motion.Element], [motion.Container] and
// [motion.Viewport]), so it can stand in for a browser page in tests, drive a
// terminal or game renderer, or mirror a remote display.
//
//	doc := page.NewDocument(800, 600)
//	score := page.NewNode("score").SetAttr(motion.AttrScore, "87")
//	doc.Root.AddChild(score)
//
//	b := page.Mount(animator, doc)
//	defer b.Unmount()
//
// Documents are not safe for concurrent use. Mutate them on the goroutine
// that drives the animator's scheduler.
package page
