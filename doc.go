// Package numproc is a small numeric matrix processor: an immutable dense
// matrix engine plus the console menu that drives it.
//
// What is inside?
//
//	matrix/        — Dense type, Add/Scale/Mul, four transposition modes,
//	                 determinant by cofactor expansion, adjugate inverse
//	menu/          — numbered text menus with one-shot submenus
//	console/       — whitespace-token reader and result printer
//	processor/     — the interactive session binding menu items to matrix operations
//	cmd/processor/ — the binary
//
// Quick example:
//
//	a, _ := matrix.New(2, 2, []float64{1, 2, 3, 4})
//	det, _ := matrix.Determinant(a)    // -2
//	inv, ok, _ := matrix.Inverse(a)    // ok == true
//	fmt.Print(inv)
//	//     -2.00      1.00
//	//      1.50     -0.50
//
// Run the interactive processor with:
//
//	go run ./cmd/processor -v
package numproc
