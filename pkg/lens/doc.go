// Package lens provides generic lenses: pairs of pure functions that read
// and non-destructively replace one part of an immutable value.
//
// A Lens[W, P] focuses on a part P inside a whole W. Lenses are values; they
// hold no state and can be shared freely between goroutines.
//
// Key operations:
// - New: build a leaf lens from a getter and a setter
// - Get/Set/Over/Modify: read, replace or transform the focused part
// - Compose/Compose3: focus deeper (A -> B -> C)
// - Zip/Zip2/Zip3: focus on several disjoint parts of the same whole at once
// - ZipFlat3/ZipFlat4: the same with flat tuples
// - Identity/First/Second/MapAt/SliceAt: ready-made leaves
//
// Lenses built here are expected to obey the lens laws; package laws checks
// them.
package lens
