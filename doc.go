// Package boxlayout lays out boxes along a single axis.
//
// A [View] tree is the host: each view sizes its children on the cross axis
// and hands the primary axis to [Linear], which places children one after
// another with fixed, wrap-content or weighted fill lengths. The computed
// frames can be read back with [View.Frame] and [View.Bounds] or drawn on a
// character [Canvas] with [Render].
//
//	root := boxlayout.New(
//		boxlayout.WithHorizontal(),
//		boxlayout.WithWidthFill(1),
//		boxlayout.WithChildren(
//			boxlayout.New(boxlayout.WithWidth(20)),
//			boxlayout.New(boxlayout.WithWidthFill(1)),
//		),
//	)
//	root.Layout(80, 24)
package boxlayout
