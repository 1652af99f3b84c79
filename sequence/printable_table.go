package sequence

import "unicode"

// nonPrintable is the character class stripped by Clean: C0/C1 controls,
// the soft hyphen, format and bidi controls, zero-width characters,
// private use, surrogates and code points unassigned as of Unicode 6.
var nonPrintable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0000, Hi: 0x001f, Stride: 1},
		{Lo: 0x007f, Hi: 0x009f, Stride: 1},
		{Lo: 0x00ad, Hi: 0x00ad, Stride: 1},
		{Lo: 0x0378, Hi: 0x0379, Stride: 1},
		{Lo: 0x037f, Hi: 0x0383, Stride: 1},
		{Lo: 0x038b, Hi: 0x038b, Stride: 1},
		{Lo: 0x038d, Hi: 0x038d, Stride: 1},
		{Lo: 0x03a2, Hi: 0x03a2, Stride: 1},
		{Lo: 0x0528, Hi: 0x0530, Stride: 1},
		{Lo: 0x0557, Hi: 0x0558, Stride: 1},
		{Lo: 0x0560, Hi: 0x0560, Stride: 1},
		{Lo: 0x0588, Hi: 0x0588, Stride: 1},
		{Lo: 0x058b, Hi: 0x058e, Stride: 1},
		{Lo: 0x0590, Hi: 0x0590, Stride: 1},
		{Lo: 0x05c8, Hi: 0x05cf, Stride: 1},
		{Lo: 0x05eb, Hi: 0x05ef, Stride: 1},
		{Lo: 0x05f5, Hi: 0x0605, Stride: 1},
		{Lo: 0x061c, Hi: 0x061d, Stride: 1},
		{Lo: 0x06dd, Hi: 0x06dd, Stride: 1},
		{Lo: 0x070e, Hi: 0x070f, Stride: 1},
		{Lo: 0x074b, Hi: 0x074c, Stride: 1},
		{Lo: 0x07b2, Hi: 0x07bf, Stride: 1},
		{Lo: 0x07fb, Hi: 0x07ff, Stride: 1},
		{Lo: 0x082e, Hi: 0x082f, Stride: 1},
		{Lo: 0x083f, Hi: 0x083f, Stride: 1},
		{Lo: 0x085c, Hi: 0x085d, Stride: 1},
		{Lo: 0x085f, Hi: 0x089f, Stride: 1},
		{Lo: 0x08a1, Hi: 0x08a1, Stride: 1},
		{Lo: 0x08ad, Hi: 0x08e3, Stride: 1},
		{Lo: 0x08ff, Hi: 0x08ff, Stride: 1},
		{Lo: 0x0978, Hi: 0x0978, Stride: 1},
		{Lo: 0x0980, Hi: 0x0980, Stride: 1},
		{Lo: 0x0984, Hi: 0x0984, Stride: 1},
		{Lo: 0x098d, Hi: 0x098e, Stride: 1},
		{Lo: 0x0991, Hi: 0x0992, Stride: 1},
		{Lo: 0x09a9, Hi: 0x09a9, Stride: 1},
		{Lo: 0x09b1, Hi: 0x09b1, Stride: 1},
		{Lo: 0x09b3, Hi: 0x09b5, Stride: 1},
		{Lo: 0x09ba, Hi: 0x09bb, Stride: 1},
		{Lo: 0x09c5, Hi: 0x09c6, Stride: 1},
		{Lo: 0x09c9, Hi: 0x09ca, Stride: 1},
		{Lo: 0x09cf, Hi: 0x09d6, Stride: 1},
		{Lo: 0x09d8, Hi: 0x09db, Stride: 1},
		{Lo: 0x09de, Hi: 0x09de, Stride: 1},
		{Lo: 0x09e4, Hi: 0x09e5, Stride: 1},
		{Lo: 0x09fc, Hi: 0x0a00, Stride: 1},
		{Lo: 0x0a04, Hi: 0x0a04, Stride: 1},
		{Lo: 0x0a0b, Hi: 0x0a0e, Stride: 1},
		{Lo: 0x0a11, Hi: 0x0a12, Stride: 1},
		{Lo: 0x0a29, Hi: 0x0a29, Stride: 1},
		{Lo: 0x0a31, Hi: 0x0a31, Stride: 1},
		{Lo: 0x0a34, Hi: 0x0a34, Stride: 1},
		{Lo: 0x0a37, Hi: 0x0a37, Stride: 1},
		{Lo: 0x0a3a, Hi: 0x0a3b, Stride: 1},
		{Lo: 0x0a3d, Hi: 0x0a3d, Stride: 1},
		{Lo: 0x0a43, Hi: 0x0a46, Stride: 1},
		{Lo: 0x0a49, Hi: 0x0a4a, Stride: 1},
		{Lo: 0x0a4e, Hi: 0x0a50, Stride: 1},
		{Lo: 0x0a52, Hi: 0x0a58, Stride: 1},
		{Lo: 0x0a5d, Hi: 0x0a5d, Stride: 1},
		{Lo: 0x0a5f, Hi: 0x0a65, Stride: 1},
		{Lo: 0x0a76, Hi: 0x0a80, Stride: 1},
		{Lo: 0x0a84, Hi: 0x0a84, Stride: 1},
		{Lo: 0x0a8e, Hi: 0x0a8e, Stride: 1},
		{Lo: 0x0a92, Hi: 0x0a92, Stride: 1},
		{Lo: 0x0aa9, Hi: 0x0aa9, Stride: 1},
		{Lo: 0x0ab1, Hi: 0x0ab1, Stride: 1},
		{Lo: 0x0ab4, Hi: 0x0ab4, Stride: 1},
		{Lo: 0x0aba, Hi: 0x0abb, Stride: 1},
		{Lo: 0x0ac6, Hi: 0x0ac6, Stride: 1},
		{Lo: 0x0aca, Hi: 0x0aca, Stride: 1},
		{Lo: 0x0ace, Hi: 0x0acf, Stride: 1},
		{Lo: 0x0ad1, Hi: 0x0adf, Stride: 1},
		{Lo: 0x0ae4, Hi: 0x0ae5, Stride: 1},
		{Lo: 0x0af2, Hi: 0x0b00, Stride: 1},
		{Lo: 0x0b04, Hi: 0x0b04, Stride: 1},
		{Lo: 0x0b0d, Hi: 0x0b0e, Stride: 1},
		{Lo: 0x0b11, Hi: 0x0b12, Stride: 1},
		{Lo: 0x0b29, Hi: 0x0b29, Stride: 1},
		{Lo: 0x0b31, Hi: 0x0b31, Stride: 1},
		{Lo: 0x0b34, Hi: 0x0b34, Stride: 1},
		{Lo: 0x0b3a, Hi: 0x0b3b, Stride: 1},
		{Lo: 0x0b45, Hi: 0x0b46, Stride: 1},
		{Lo: 0x0b49, Hi: 0x0b4a, Stride: 1},
		{Lo: 0x0b4e, Hi: 0x0b55, Stride: 1},
		{Lo: 0x0b58, Hi: 0x0b5b, Stride: 1},
		{Lo: 0x0b5e, Hi: 0x0b5e, Stride: 1},
		{Lo: 0x0b64, Hi: 0x0b65, Stride: 1},
		{Lo: 0x0b78, Hi: 0x0b81, Stride: 1},
		{Lo: 0x0b84, Hi: 0x0b84, Stride: 1},
		{Lo: 0x0b8b, Hi: 0x0b8d, Stride: 1},
		{Lo: 0x0b91, Hi: 0x0b91, Stride: 1},
		{Lo: 0x0b96, Hi: 0x0b98, Stride: 1},
		{Lo: 0x0b9b, Hi: 0x0b9b, Stride: 1},
		{Lo: 0x0b9d, Hi: 0x0b9d, Stride: 1},
		{Lo: 0x0ba0, Hi: 0x0ba2, Stride: 1},
		{Lo: 0x0ba5, Hi: 0x0ba7, Stride: 1},
		{Lo: 0x0bab, Hi: 0x0bad, Stride: 1},
		{Lo: 0x0bba, Hi: 0x0bbd, Stride: 1},
		{Lo: 0x0bc3, Hi: 0x0bc5, Stride: 1},
		{Lo: 0x0bc9, Hi: 0x0bc9, Stride: 1},
		{Lo: 0x0bce, Hi: 0x0bcf, Stride: 1},
		{Lo: 0x0bd1, Hi: 0x0bd6, Stride: 1},
		{Lo: 0x0bd8, Hi: 0x0be5, Stride: 1},
		{Lo: 0x0bfb, Hi: 0x0c00, Stride: 1},
		{Lo: 0x0c04, Hi: 0x0c04, Stride: 1},
		{Lo: 0x0c0d, Hi: 0x0c0d, Stride: 1},
		{Lo: 0x0c11, Hi: 0x0c11, Stride: 1},
		{Lo: 0x0c29, Hi: 0x0c29, Stride: 1},
		{Lo: 0x0c34, Hi: 0x0c34, Stride: 1},
		{Lo: 0x0c3a, Hi: 0x0c3c, Stride: 1},
		{Lo: 0x0c45, Hi: 0x0c45, Stride: 1},
		{Lo: 0x0c49, Hi: 0x0c49, Stride: 1},
		{Lo: 0x0c4e, Hi: 0x0c54, Stride: 1},
		{Lo: 0x0c57, Hi: 0x0c57, Stride: 1},
		{Lo: 0x0c5a, Hi: 0x0c5f, Stride: 1},
		{Lo: 0x0c64, Hi: 0x0c65, Stride: 1},
		{Lo: 0x0c70, Hi: 0x0c77, Stride: 1},
		{Lo: 0x0c80, Hi: 0x0c81, Stride: 1},
		{Lo: 0x0c84, Hi: 0x0c84, Stride: 1},
		{Lo: 0x0c8d, Hi: 0x0c8d, Stride: 1},
		{Lo: 0x0c91, Hi: 0x0c91, Stride: 1},
		{Lo: 0x0ca9, Hi: 0x0ca9, Stride: 1},
		{Lo: 0x0cb4, Hi: 0x0cb4, Stride: 1},
		{Lo: 0x0cba, Hi: 0x0cbb, Stride: 1},
		{Lo: 0x0cc5, Hi: 0x0cc5, Stride: 1},
		{Lo: 0x0cc9, Hi: 0x0cc9, Stride: 1},
		{Lo: 0x0cce, Hi: 0x0cd4, Stride: 1},
		{Lo: 0x0cd7, Hi: 0x0cdd, Stride: 1},
		{Lo: 0x0cdf, Hi: 0x0cdf, Stride: 1},
		{Lo: 0x0ce4, Hi: 0x0ce5, Stride: 1},
		{Lo: 0x0cf0, Hi: 0x0cf0, Stride: 1},
		{Lo: 0x0cf3, Hi: 0x0d01, Stride: 1},
		{Lo: 0x0d04, Hi: 0x0d04, Stride: 1},
		{Lo: 0x0d0d, Hi: 0x0d0d, Stride: 1},
		{Lo: 0x0d11, Hi: 0x0d11, Stride: 1},
		{Lo: 0x0d3b, Hi: 0x0d3c, Stride: 1},
		{Lo: 0x0d45, Hi: 0x0d45, Stride: 1},
		{Lo: 0x0d49, Hi: 0x0d49, Stride: 1},
		{Lo: 0x0d4f, Hi: 0x0d56, Stride: 1},
		{Lo: 0x0d58, Hi: 0x0d5f, Stride: 1},
		{Lo: 0x0d64, Hi: 0x0d65, Stride: 1},
		{Lo: 0x0d76, Hi: 0x0d78, Stride: 1},
		{Lo: 0x0d80, Hi: 0x0d81, Stride: 1},
		{Lo: 0x0d84, Hi: 0x0d84, Stride: 1},
		{Lo: 0x0d97, Hi: 0x0d99, Stride: 1},
		{Lo: 0x0db2, Hi: 0x0db2, Stride: 1},
		{Lo: 0x0dbc, Hi: 0x0dbc, Stride: 1},
		{Lo: 0x0dbe, Hi: 0x0dbf, Stride: 1},
		{Lo: 0x0dc7, Hi: 0x0dc9, Stride: 1},
		{Lo: 0x0dcb, Hi: 0x0dce, Stride: 1},
		{Lo: 0x0dd5, Hi: 0x0dd5, Stride: 1},
		{Lo: 0x0dd7, Hi: 0x0dd7, Stride: 1},
		{Lo: 0x0de0, Hi: 0x0df1, Stride: 1},
		{Lo: 0x0df5, Hi: 0x0e00, Stride: 1},
		{Lo: 0x0e3b, Hi: 0x0e3e, Stride: 1},
		{Lo: 0x0e5c, Hi: 0x0e80, Stride: 1},
		{Lo: 0x0e83, Hi: 0x0e83, Stride: 1},
		{Lo: 0x0e85, Hi: 0x0e86, Stride: 1},
		{Lo: 0x0e89, Hi: 0x0e89, Stride: 1},
		{Lo: 0x0e8b, Hi: 0x0e8c, Stride: 1},
		{Lo: 0x0e8e, Hi: 0x0e93, Stride: 1},
		{Lo: 0x0e98, Hi: 0x0e98, Stride: 1},
		{Lo: 0x0ea0, Hi: 0x0ea0, Stride: 1},
		{Lo: 0x0ea4, Hi: 0x0ea4, Stride: 1},
		{Lo: 0x0ea6, Hi: 0x0ea6, Stride: 1},
		{Lo: 0x0ea8, Hi: 0x0ea9, Stride: 1},
		{Lo: 0x0eac, Hi: 0x0eac, Stride: 1},
		{Lo: 0x0eba, Hi: 0x0eba, Stride: 1},
		{Lo: 0x0ebe, Hi: 0x0ebf, Stride: 1},
		{Lo: 0x0ec5, Hi: 0x0ec5, Stride: 1},
		{Lo: 0x0ec7, Hi: 0x0ec7, Stride: 1},
		{Lo: 0x0ece, Hi: 0x0ecf, Stride: 1},
		{Lo: 0x0eda, Hi: 0x0edb, Stride: 1},
		{Lo: 0x0ee0, Hi: 0x0eff, Stride: 1},
		{Lo: 0x0f48, Hi: 0x0f48, Stride: 1},
		{Lo: 0x0f6d, Hi: 0x0f70, Stride: 1},
		{Lo: 0x0f98, Hi: 0x0f98, Stride: 1},
		{Lo: 0x0fbd, Hi: 0x0fbd, Stride: 1},
		{Lo: 0x0fcd, Hi: 0x0fcd, Stride: 1},
		{Lo: 0x0fdb, Hi: 0x0fff, Stride: 1},
		{Lo: 0x10c6, Hi: 0x10c6, Stride: 1},
		{Lo: 0x10c8, Hi: 0x10cc, Stride: 1},
		{Lo: 0x10ce, Hi: 0x10cf, Stride: 1},
		{Lo: 0x1249, Hi: 0x1249, Stride: 1},
		{Lo: 0x124e, Hi: 0x124f, Stride: 1},
		{Lo: 0x1257, Hi: 0x1257, Stride: 1},
		{Lo: 0x1259, Hi: 0x1259, Stride: 1},
		{Lo: 0x125e, Hi: 0x125f, Stride: 1},
		{Lo: 0x1289, Hi: 0x1289, Stride: 1},
		{Lo: 0x128e, Hi: 0x128f, Stride: 1},
		{Lo: 0x12b1, Hi: 0x12b1, Stride: 1},
		{Lo: 0x12b6, Hi: 0x12b7, Stride: 1},
		{Lo: 0x12bf, Hi: 0x12bf, Stride: 1},
		{Lo: 0x12c1, Hi: 0x12c1, Stride: 1},
		{Lo: 0x12c6, Hi: 0x12c7, Stride: 1},
		{Lo: 0x12d7, Hi: 0x12d7, Stride: 1},
		{Lo: 0x1311, Hi: 0x1311, Stride: 1},
		{Lo: 0x1316, Hi: 0x1317, Stride: 1},
		{Lo: 0x135b, Hi: 0x135c, Stride: 1},
		{Lo: 0x137d, Hi: 0x137f, Stride: 1},
		{Lo: 0x139a, Hi: 0x139f, Stride: 1},
		{Lo: 0x13f5, Hi: 0x13ff, Stride: 1},
		{Lo: 0x169d, Hi: 0x169f, Stride: 1},
		{Lo: 0x16f1, Hi: 0x16ff, Stride: 1},
		{Lo: 0x170d, Hi: 0x170d, Stride: 1},
		{Lo: 0x1715, Hi: 0x171f, Stride: 1},
		{Lo: 0x1737, Hi: 0x173f, Stride: 1},
		{Lo: 0x1754, Hi: 0x175f, Stride: 1},
		{Lo: 0x176d, Hi: 0x176d, Stride: 1},
		{Lo: 0x1771, Hi: 0x1771, Stride: 1},
		{Lo: 0x1774, Hi: 0x177f, Stride: 1},
		{Lo: 0x17de, Hi: 0x17df, Stride: 1},
		{Lo: 0x17ea, Hi: 0x17ef, Stride: 1},
		{Lo: 0x17fa, Hi: 0x17ff, Stride: 1},
		{Lo: 0x180f, Hi: 0x180f, Stride: 1},
		{Lo: 0x181a, Hi: 0x181f, Stride: 1},
		{Lo: 0x1878, Hi: 0x187f, Stride: 1},
		{Lo: 0x18ab, Hi: 0x18af, Stride: 1},
		{Lo: 0x18f6, Hi: 0x18ff, Stride: 1},
		{Lo: 0x191d, Hi: 0x191f, Stride: 1},
		{Lo: 0x192c, Hi: 0x192f, Stride: 1},
		{Lo: 0x193c, Hi: 0x193f, Stride: 1},
		{Lo: 0x1941, Hi: 0x1943, Stride: 1},
		{Lo: 0x196e, Hi: 0x196f, Stride: 1},
		{Lo: 0x1975, Hi: 0x197f, Stride: 1},
		{Lo: 0x19ac, Hi: 0x19af, Stride: 1},
		{Lo: 0x19ca, Hi: 0x19cf, Stride: 1},
		{Lo: 0x19db, Hi: 0x19dd, Stride: 1},
		{Lo: 0x1a1c, Hi: 0x1a1d, Stride: 1},
		{Lo: 0x1a5f, Hi: 0x1a5f, Stride: 1},
		{Lo: 0x1a7d, Hi: 0x1a7e, Stride: 1},
		{Lo: 0x1a8a, Hi: 0x1a8f, Stride: 1},
		{Lo: 0x1a9a, Hi: 0x1a9f, Stride: 1},
		{Lo: 0x1aae, Hi: 0x1aff, Stride: 1},
		{Lo: 0x1b4c, Hi: 0x1b4f, Stride: 1},
		{Lo: 0x1b7d, Hi: 0x1b7f, Stride: 1},
		{Lo: 0x1bf4, Hi: 0x1bfb, Stride: 1},
		{Lo: 0x1c38, Hi: 0x1c3a, Stride: 1},
		{Lo: 0x1c4a, Hi: 0x1c4c, Stride: 1},
		{Lo: 0x1c80, Hi: 0x1cbf, Stride: 1},
		{Lo: 0x1cc8, Hi: 0x1ccf, Stride: 1},
		{Lo: 0x1cf7, Hi: 0x1cff, Stride: 1},
		{Lo: 0x1de7, Hi: 0x1dfb, Stride: 1},
		{Lo: 0x1f16, Hi: 0x1f17, Stride: 1},
		{Lo: 0x1f1e, Hi: 0x1f1f, Stride: 1},
		{Lo: 0x1f46, Hi: 0x1f47, Stride: 1},
		{Lo: 0x1f4e, Hi: 0x1f4f, Stride: 1},
		{Lo: 0x1f58, Hi: 0x1f58, Stride: 1},
		{Lo: 0x1f5a, Hi: 0x1f5a, Stride: 1},
		{Lo: 0x1f5c, Hi: 0x1f5c, Stride: 1},
		{Lo: 0x1f5e, Hi: 0x1f5e, Stride: 1},
		{Lo: 0x1f7e, Hi: 0x1f7f, Stride: 1},
		{Lo: 0x1fb5, Hi: 0x1fb5, Stride: 1},
		{Lo: 0x1fc5, Hi: 0x1fc5, Stride: 1},
		{Lo: 0x1fd4, Hi: 0x1fd5, Stride: 1},
		{Lo: 0x1fdc, Hi: 0x1fdc, Stride: 1},
		{Lo: 0x1ff0, Hi: 0x1ff1, Stride: 1},
		{Lo: 0x1ff5, Hi: 0x1ff5, Stride: 1},
		{Lo: 0x1fff, Hi: 0x1fff, Stride: 1},
		{Lo: 0x200b, Hi: 0x200f, Stride: 1},
		{Lo: 0x202a, Hi: 0x202e, Stride: 1},
		{Lo: 0x2060, Hi: 0x206f, Stride: 1},
		{Lo: 0x2072, Hi: 0x2073, Stride: 1},
		{Lo: 0x208f, Hi: 0x208f, Stride: 1},
		{Lo: 0x209d, Hi: 0x209f, Stride: 1},
		{Lo: 0x20bb, Hi: 0x20cf, Stride: 1},
		{Lo: 0x20f1, Hi: 0x20ff, Stride: 1},
		{Lo: 0x218a, Hi: 0x218f, Stride: 1},
		{Lo: 0x23f4, Hi: 0x23ff, Stride: 1},
		{Lo: 0x2427, Hi: 0x243f, Stride: 1},
		{Lo: 0x244b, Hi: 0x245f, Stride: 1},
		{Lo: 0x2700, Hi: 0x2700, Stride: 1},
		{Lo: 0x2b4d, Hi: 0x2b4f, Stride: 1},
		{Lo: 0x2b5a, Hi: 0x2bff, Stride: 1},
		{Lo: 0x2c2f, Hi: 0x2c2f, Stride: 1},
		{Lo: 0x2c5f, Hi: 0x2c5f, Stride: 1},
		{Lo: 0x2cf4, Hi: 0x2cf8, Stride: 1},
		{Lo: 0x2d26, Hi: 0x2d26, Stride: 1},
		{Lo: 0x2d28, Hi: 0x2d2c, Stride: 1},
		{Lo: 0x2d2e, Hi: 0x2d2f, Stride: 1},
		{Lo: 0x2d68, Hi: 0x2d6e, Stride: 1},
		{Lo: 0x2d71, Hi: 0x2d7e, Stride: 1},
		{Lo: 0x2d97, Hi: 0x2d9f, Stride: 1},
		{Lo: 0x2da7, Hi: 0x2da7, Stride: 1},
		{Lo: 0x2daf, Hi: 0x2daf, Stride: 1},
		{Lo: 0x2db7, Hi: 0x2db7, Stride: 1},
		{Lo: 0x2dbf, Hi: 0x2dbf, Stride: 1},
		{Lo: 0x2dc7, Hi: 0x2dc7, Stride: 1},
		{Lo: 0x2dcf, Hi: 0x2dcf, Stride: 1},
		{Lo: 0x2dd7, Hi: 0x2dd7, Stride: 1},
		{Lo: 0x2ddf, Hi: 0x2ddf, Stride: 1},
		{Lo: 0x2e3c, Hi: 0x2e7f, Stride: 1},
		{Lo: 0x2e9a, Hi: 0x2e9a, Stride: 1},
		{Lo: 0x2ef4, Hi: 0x2eff, Stride: 1},
		{Lo: 0x2fd6, Hi: 0x2fef, Stride: 1},
		{Lo: 0x2ffc, Hi: 0x2fff, Stride: 1},
		{Lo: 0x3040, Hi: 0x3040, Stride: 1},
		{Lo: 0x3097, Hi: 0x3098, Stride: 1},
		{Lo: 0x3100, Hi: 0x3104, Stride: 1},
		{Lo: 0x312e, Hi: 0x3130, Stride: 1},
		{Lo: 0x318f, Hi: 0x318f, Stride: 1},
		{Lo: 0x31bb, Hi: 0x31bf, Stride: 1},
		{Lo: 0x31e4, Hi: 0x31ef, Stride: 1},
		{Lo: 0x321f, Hi: 0x321f, Stride: 1},
		{Lo: 0x32ff, Hi: 0x32ff, Stride: 1},
		{Lo: 0x4db6, Hi: 0x4dbf, Stride: 1},
		{Lo: 0x9fcd, Hi: 0x9fff, Stride: 1},
		{Lo: 0xa48d, Hi: 0xa48f, Stride: 1},
		{Lo: 0xa4c7, Hi: 0xa4cf, Stride: 1},
		{Lo: 0xa62c, Hi: 0xa63f, Stride: 1},
		{Lo: 0xa698, Hi: 0xa69e, Stride: 1},
		{Lo: 0xa6f8, Hi: 0xa6ff, Stride: 1},
		{Lo: 0xa78f, Hi: 0xa78f, Stride: 1},
		{Lo: 0xa794, Hi: 0xa79f, Stride: 1},
		{Lo: 0xa7ab, Hi: 0xa7f7, Stride: 1},
		{Lo: 0xa82c, Hi: 0xa82f, Stride: 1},
		{Lo: 0xa83a, Hi: 0xa83f, Stride: 1},
		{Lo: 0xa878, Hi: 0xa87f, Stride: 1},
		{Lo: 0xa8c5, Hi: 0xa8cd, Stride: 1},
		{Lo: 0xa8da, Hi: 0xa8df, Stride: 1},
		{Lo: 0xa8fc, Hi: 0xa8ff, Stride: 1},
		{Lo: 0xa954, Hi: 0xa95e, Stride: 1},
		{Lo: 0xa97d, Hi: 0xa97f, Stride: 1},
		{Lo: 0xa9ce, Hi: 0xa9ce, Stride: 1},
		{Lo: 0xa9da, Hi: 0xa9dd, Stride: 1},
		{Lo: 0xa9e0, Hi: 0xa9ff, Stride: 1},
		{Lo: 0xaa37, Hi: 0xaa3f, Stride: 1},
		{Lo: 0xaa4e, Hi: 0xaa4f, Stride: 1},
		{Lo: 0xaa5a, Hi: 0xaa5b, Stride: 1},
		{Lo: 0xaa7c, Hi: 0xaa7f, Stride: 1},
		{Lo: 0xaac3, Hi: 0xaada, Stride: 1},
		{Lo: 0xaaf7, Hi: 0xab00, Stride: 1},
		{Lo: 0xab07, Hi: 0xab08, Stride: 1},
		{Lo: 0xab0f, Hi: 0xab10, Stride: 1},
		{Lo: 0xab17, Hi: 0xab1f, Stride: 1},
		{Lo: 0xab27, Hi: 0xab27, Stride: 1},
		{Lo: 0xab2f, Hi: 0xabbf, Stride: 1},
		{Lo: 0xabee, Hi: 0xabef, Stride: 1},
		{Lo: 0xabfa, Hi: 0xabff, Stride: 1},
		{Lo: 0xd7a4, Hi: 0xd7af, Stride: 1},
		{Lo: 0xd7c7, Hi: 0xd7ca, Stride: 1},
		{Lo: 0xd7fc, Hi: 0xf8ff, Stride: 1},
		{Lo: 0xfa6e, Hi: 0xfa6f, Stride: 1},
		{Lo: 0xfada, Hi: 0xfaff, Stride: 1},
		{Lo: 0xfb07, Hi: 0xfb12, Stride: 1},
		{Lo: 0xfb18, Hi: 0xfb1c, Stride: 1},
		{Lo: 0xfb37, Hi: 0xfb37, Stride: 1},
		{Lo: 0xfb3d, Hi: 0xfb3d, Stride: 1},
		{Lo: 0xfb3f, Hi: 0xfb3f, Stride: 1},
		{Lo: 0xfb42, Hi: 0xfb42, Stride: 1},
		{Lo: 0xfb45, Hi: 0xfb45, Stride: 1},
		{Lo: 0xfbc2, Hi: 0xfbd2, Stride: 1},
		{Lo: 0xfd40, Hi: 0xfd4f, Stride: 1},
		{Lo: 0xfd90, Hi: 0xfd91, Stride: 1},
		{Lo: 0xfdc8, Hi: 0xfdef, Stride: 1},
		{Lo: 0xfdfe, Hi: 0xfdff, Stride: 1},
		{Lo: 0xfe1a, Hi: 0xfe1f, Stride: 1},
		{Lo: 0xfe27, Hi: 0xfe2f, Stride: 1},
		{Lo: 0xfe53, Hi: 0xfe53, Stride: 1},
		{Lo: 0xfe67, Hi: 0xfe67, Stride: 1},
		{Lo: 0xfe6c, Hi: 0xfe6f, Stride: 1},
		{Lo: 0xfe75, Hi: 0xfe75, Stride: 1},
		{Lo: 0xfefd, Hi: 0xff00, Stride: 1},
		{Lo: 0xffbf, Hi: 0xffc1, Stride: 1},
		{Lo: 0xffc8, Hi: 0xffc9, Stride: 1},
		{Lo: 0xffd0, Hi: 0xffd1, Stride: 1},
		{Lo: 0xffd8, Hi: 0xffd9, Stride: 1},
		{Lo: 0xffdd, Hi: 0xffdf, Stride: 1},
		{Lo: 0xffe7, Hi: 0xffe7, Stride: 1},
		{Lo: 0xffef, Hi: 0xfffb, Stride: 1},
		{Lo: 0xfffe, Hi: 0xffff, Stride: 1},
	},
	LatinOffset: 3,
}
