// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package paint provides the raster operations used to turn a decoded
image into the raster displayed for a rect: scaling according to an
image mode ([Fit], [FitSize], [Resizer]), rounding corners ([Round]),
and placing the result on a rect-sized canvas ([Place]).

All rasters are [*image.NRGBA] with bounds starting at (0, 0).
The functions are pure apart from [Round], which edits its argument.
*/
package paint
