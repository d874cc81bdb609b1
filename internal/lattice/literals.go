package lattice

// LITERALS holds the digit vectors of the complex-base numeral system: the
// k-th entry is the k-th power of the complex base b with |b|^2 = 2 (up to
// the sign/rounding convention the codec's geometry relies on). The source
// recurrence used to derive these degenerates for small k, so the table is
// reproduced verbatim from the reference implementation rather than
// recomputed at runtime.
var LITERALS = [30]Vec{
	{0, 1},
	{-1, 1},
	{2, 0},
	{-3, -1},
	{5, -1},
	{1, 3},
	{-11, -1},
	{9, -5},
	{13, 7},
	{-31, 3},
	{5, -17},
	{57, 11},
	{-67, 23},
	{-47, -45},
	{181, -1},
	{-87, 91},
	{-275, -89},
	{449, -93},
	{101, 271},
	{-999, -85},
	{797, -457},
	{1201, 627},
	{-2795, 287},
	{393, -1541},
	{5197, 967},
	{-5983, 2115},
	{-4411, -4049},
	{16377, -181},
	{-7555, 8279},
	{-25199, -7917},
}
