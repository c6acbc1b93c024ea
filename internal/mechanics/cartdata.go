package mechanics

// Traveling cart data tables.
//
// cartRollToItem maps a pre-1.4 raw roll (2..789) straight to an item id;
// duplicates in the table give common items more weight. cartItems14 is the
// 1.4+ valid-item list probed by the linear search. basePrices carries base
// sell prices used by the price formula; ids without an entry fall back to
// defaultBasePrice. The 1.6 shop catalog is assembled from these tables at
// init: one row per object id in 0..789 so the shuffle consumes exactly one
// draw per catalog row.

const defaultBasePrice = 100

var cartRollToItem = [788]int32{
	16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 18, 18, 20, 20,
	22, 22, 24, 24, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78,
	78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78,
	78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78,
	78, 78, 78, 78, 88, 88, 88, 88, 88, 88, 88, 88, 88, 88, 90, 90, 92, 92,
	128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128,
	128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128,
	129, 130, 131, 132, 136, 136, 136, 136, 137, 138, 139, 140, 141, 142, 143, 144, 145, 146,
	147, 148, 149, 150, 151, 154, 154, 154, 155, 156, 164, 164, 164, 164, 164, 164, 164, 164,
	165, 167, 167, 174, 174, 174, 174, 174, 174, 174, 176, 176, 180, 180, 180, 180, 182, 182,
	184, 184, 186, 186, 188, 188, 190, 190, 192, 192, 194, 194, 195, 196, 197, 198, 199, 200,
	201, 202, 203, 204, 205, 206, 207, 208, 209, 210, 211, 212, 213, 214, 215, 216, 218, 218,
	219, 220, 221, 222, 223, 224, 225, 226, 227, 228, 229, 230, 231, 232, 233, 234, 235, 236,
	237, 238, 239, 240, 241, 242, 243, 244, 248, 248, 248, 248, 250, 250, 252, 252, 254, 254,
	256, 256, 257, 258, 259, 260, 262, 262, 264, 264, 266, 266, 268, 268, 270, 270, 272, 272,
	274, 274, 276, 276, 278, 278, 280, 280, 281, 282, 283, 284, 286, 286, 287, 288, 296, 296,
	296, 296, 296, 296, 296, 296, 298, 298, 299, 300, 301, 302, 303, 304, 305, 306, 307, 308,
	309, 310, 311, 322, 322, 322, 322, 322, 322, 322, 322, 322, 322, 322, 323, 324, 325, 328,
	328, 328, 329, 330, 331, 333, 333, 334, 335, 336, 337, 338, 340, 340, 342, 342, 344, 344,
	346, 346, 347, 348, 350, 350, 368, 368, 368, 368, 368, 368, 368, 368, 368, 368, 368, 368,
	368, 368, 368, 368, 368, 368, 369, 370, 371, 372, 376, 376, 376, 376, 378, 378, 380, 380,
	382, 382, 384, 384, 386, 386, 388, 388, 390, 390, 392, 392, 393, 394, 396, 396, 397, 398,
	399, 400, 401, 402, 404, 404, 405, 406, 407, 408, 409, 410, 411, 412, 414, 414, 415, 416,
	417, 418, 420, 420, 421, 422, 424, 424, 425, 426, 427, 428, 429, 430, 431, 432, 433, 436,
	436, 436, 438, 438, 440, 440, 442, 442, 444, 444, 446, 446, 453, 453, 453, 453, 453, 453,
	453, 455, 455, 456, 457, 459, 459, 465, 465, 465, 465, 465, 465, 466, 472, 472, 472, 472,
	472, 472, 473, 474, 475, 476, 477, 478, 479, 480, 481, 482, 483, 484, 485, 486, 487, 488,
	489, 490, 491, 492, 493, 494, 495, 496, 497, 498, 499, 591, 591, 591, 591, 591, 591, 591,
	591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591,
	591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591,
	591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591,
	591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591,
	591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 593, 593, 595, 595, 597,
	597, 599, 599, 604, 604, 604, 604, 604, 605, 606, 607, 608, 609, 610, 611, 612, 613, 618,
	618, 618, 618, 618, 621, 621, 621, 628, 628, 628, 628, 628, 628, 628, 629, 630, 631, 632,
	633, 634, 635, 636, 637, 638, 648, 648, 648, 648, 648, 648, 648, 648, 648, 648, 649, 651,
	651, 684, 684, 684, 684, 684, 684, 684, 684, 684, 684, 684, 684, 684, 684, 684, 684, 684,
	684, 684, 684, 684, 684, 684, 684, 684, 684, 684, 684, 684, 684, 684, 684, 684, 685, 686,
	687, 691, 691, 691, 691, 692, 693, 694, 695, 698, 698, 698, 699, 700, 701, 702, 703, 704,
	705, 706, 707, 708, 709, 715, 715, 715, 715, 715, 715, 716, 717, 718, 719, 720, 721, 722,
	723, 724, 725, 726, 727, 728, 729, 730, 731, 732, 734, 734, 766, 766, 766, 766, 766, 766,
	766, 766, 766, 766, 766, 766, 766, 766, 766, 766, 766, 766, 766, 766, 766, 766, 766, 766,
	766, 766, 766, 766, 766, 766, 766, 766, 767, 768, 769, 771, 771, 772, 773, 787, 787, 787,
	787, 787, 787, 787, 787, 787, 787, 787, 787, 787, 787, 16, 16, 16,
}

var cartItems14 = []int32{
	16, 18, 20, 22, 24, 78, 88, 90, 92, 128, 129, 130, 131, 132, 136, 137, 138, 139,
	140, 141, 142, 143, 144, 145, 146, 147, 148, 149, 150, 151, 154, 155, 156, 164, 165, 167,
	174, 176, 180, 182, 184, 186, 188, 190, 192, 194, 195, 196, 197, 198, 199, 200, 201, 202,
	203, 204, 205, 206, 207, 208, 209, 210, 211, 212, 213, 214, 215, 216, 218, 219, 220, 221,
	222, 223, 224, 225, 226, 227, 228, 229, 230, 231, 232, 233, 234, 235, 236, 237, 238, 239,
	240, 241, 242, 243, 244, 248, 250, 251, 252, 253, 254, 256, 257, 258, 259, 260, 262, 264,
	266, 268, 270, 271, 272, 273, 274, 276, 278, 280, 281, 282, 283, 284, 286, 287, 288, 293,
	296, 298, 299, 300, 301, 302, 303, 304, 306, 307, 309, 310, 311, 322, 323, 324, 325, 328,
	329, 330, 331, 333, 334, 335, 336, 337, 338, 340, 342, 344, 346, 347, 348, 350, 368, 369,
	370, 371, 372, 376, 378, 380, 382, 384, 386, 388, 390, 392, 393, 394, 396, 397, 398, 399,
	400, 401, 402, 404, 405, 406, 407, 408, 409, 410, 411, 412, 414, 415, 416, 418, 420, 421,
	422, 424, 425, 426, 427, 428, 429, 430, 431, 432, 433, 436, 438, 440, 442, 444, 446, 453,
	455, 456, 457, 459, 465, 466, 472, 473, 474, 475, 476, 477, 478, 479, 480, 481, 482, 483,
	484, 485, 486, 487, 488, 489, 490, 491, 492, 493, 494, 495, 496, 497, 498, 499, 591, 593,
	595, 597, 599, 604, 605, 606, 607, 608, 609, 610, 611, 612, 613, 614, 618, 621, 628, 629,
	630, 631, 632, 633, 634, 635, 636, 637, 638, 648, 649, 651, 684, 685, 686, 687, 691, 692,
	693, 694, 695, 698, 699, 700, 701, 702, 703, 704, 705, 706, 707, 708, 709, 715, 716, 717,
	718, 719, 720, 721, 722, 723, 724, 725, 726, 727, 728, 729, 730, 731, 732, 733, 734, 766,
	767, 768, 769, 771, 772, 773, 787, 445, 267, 265, 269,
}

var basePrices = map[int32]int32{
	16: 50, 18: 30, 20: 60, 22: 40, 24: 35, 78: 25, 88: 100, 90: 75, 92: 2,
	128: 200, 129: 30, 130: 100, 131: 40, 132: 45, 136: 100, 137: 50, 138: 65, 139: 75,
	140: 105, 141: 55, 142: 30, 143: 200, 144: 100, 145: 30, 146: 75, 147: 30, 148: 85,
	149: 150, 150: 50, 151: 80, 154: 75, 155: 250, 156: 45, 164: 75, 165: 150, 167: 25,
	174: 95, 176: 50, 180: 50, 182: 95, 184: 125, 186: 190, 188: 40, 190: 175, 192: 80,
	194: 35, 195: 125, 196: 110, 197: 300, 198: 100, 199: 120, 200: 120, 201: 350, 202: 150,
	203: 225, 204: 250, 205: 200, 206: 300, 207: 100, 208: 200, 209: 150, 210: 120, 211: 80,
	212: 300, 213: 500, 214: 150, 215: 200, 216: 60, 218: 250, 219: 100, 220: 200, 221: 480,
	222: 400, 223: 140, 224: 120, 225: 120, 226: 175, 227: 75, 228: 220, 229: 50, 230: 400,
	231: 200, 232: 260, 233: 120, 234: 150, 235: 350, 236: 300, 237: 220, 238: 120, 239: 165,
	240: 150, 241: 180, 242: 220, 243: 200, 244: 100, 248: 60, 250: 110, 251: 70, 252: 60,
	253: 150, 254: 250, 256: 60, 257: 150, 258: 50, 259: 80, 260: 85, 262: 25, 264: 80,
	265: 500, 266: 260, 267: 120, 268: 160, 269: 300, 270: 50, 271: 100, 272: 64, 273: 30,
	274: 70, 276: 320, 278: 80, 280: 250, 281: 160, 282: 75, 283: 50, 284: 75, 286: 50,
	287: 100, 288: 300, 293: 100, 296: 40, 298: 200, 299: 10, 300: 60, 301: 30, 302: 30,
	303: 120, 304: 140, 306: 100, 307: 150, 309: 20, 310: 20, 311: 20, 322: 10, 323: 15,
	324: 20, 325: 30, 328: 10, 329: 20, 330: 20, 331: 25, 333: 20, 334: 60, 335: 120,
	336: 250, 337: 1000, 338: 50, 340: 50, 342: 75, 344: 160, 346: 200, 347: 500, 348: 140,
	350: 200, 368: 35, 369: 50, 370: 40, 371: 50, 372: 25, 376: 30, 378: 5, 380: 10,
	382: 15, 384: 25, 386: 100, 388: 2, 390: 2, 392: 110, 393: 20, 394: 65, 396: 20,
	397: 80, 398: 80, 399: 40, 400: 120, 401: 75, 402: 40, 404: 40, 405: 40, 406: 15,
	407: 25, 408: 40, 409: 75, 410: 50, 411: 20, 412: 60, 414: 200, 415: 30, 416: 60,
	418: 30, 420: 75, 421: 90, 422: 40, 424: 230, 425: 20, 426: 400, 427: 10, 428: 50,
	429: 15, 430: 625, 431: 20, 432: 250, 433: 15, 436: 100, 438: 100, 440: 680, 442: 60,
	444: 100, 445: 250, 446: 100, 453: 15, 455: 35, 456: 40, 457: 90, 459: 200, 465: 50,
	466: 150, 472: 10, 473: 20, 474: 25, 475: 20, 476: 30, 477: 25, 478: 45, 479: 35,
	480: 20, 481: 40, 482: 30, 483: 15, 484: 30, 485: 50, 486: 35, 487: 50, 488: 30,
	489: 250, 490: 300, 491: 30, 492: 60, 493: 35, 494: 40, 495: 25, 496: 25, 497: 30,
	498: 30, 499: 1000, 591: 250, 593: 380, 595: 600, 597: 200, 599: 1000, 604: 110, 605: 200,
	606: 250, 607: 255, 608: 720, 609: 350, 610: 300, 611: 200, 612: 345, 613: 1500, 614: 500,
	618: 80, 621: 2000, 628: 850, 629: 700, 630: 3000, 631: 3000, 632: 4000, 633: 2000, 634: 1700,
	635: 3000, 636: 6000, 637: 6000, 638: 7500, 648: 300, 649: 500, 651: 600, 684: 5, 685: 5,
	686: 30, 687: 150, 691: 400, 692: 150, 693: 250, 694: 750, 695: 500, 698: 300, 699: 200,
	700: 150, 701: 100, 702: 150, 703: 200, 704: 350, 705: 375, 706: 200, 707: 150, 708: 100,
	709: 250, 715: 100, 716: 75, 717: 85, 718: 30, 719: 30, 720: 60, 721: 65, 722: 20,
	723: 20, 724: 125, 725: 250, 726: 100, 727: 120, 728: 175, 729: 225, 730: 250, 731: 300,
	732: 350, 733: 500, 734: 25, 766: 5, 767: 3, 768: 40, 769: 80, 771: 10, 772: 425,
	773: 500, 787: 250,
}

// catalogEntry is one row of the 1.6 shop catalog.
type catalogEntry struct {
	id           int32
	price        int32
	offlimits    bool
	category     int32
	typeExcluded bool // Arch/Minerals/Quest types never reach the cart
}

// cartCatalog16 lists every object the 1.6 shuffle draws a key for, in
// catalog order.
var cartCatalog16 []catalogEntry

var cartItemSet14 = make(map[int32]bool, len(cartItems14))

func init() {
	for _, id := range cartItems14 {
		cartItemSet14[id] = true
	}

	cartCatalog16 = make([]catalogEntry, 0, 790)
	for id := int32(0); id <= 789; id++ {
		e := catalogEntry{id: id}
		if cartItemSet14[id] {
			e.price = itemBasePrice(id)
			e.category = -75 // sellable category; anything >= 0 is filtered
		}
		cartCatalog16 = append(cartCatalog16, e)
	}
}

func isValidCartItem14(id int32) bool {
	return cartItemSet14[id]
}

func itemBasePrice(id int32) int32 {
	if p, ok := basePrices[id]; ok {
		return p
	}
	return defaultBasePrice
}
