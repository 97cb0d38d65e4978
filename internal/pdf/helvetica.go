package pdf

// Advance widths for the Helvetica core font in thousandths of the point
// size, ASCII 32-126, per the Adobe AFM tables. The declaration wrap
// needs a width metric before layout and the PDF library exposes none
// for its creation grammar, so the standard-font table lives here.
var helveticaWidths = [95]int{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, // space ! " # $ % & ' ( )
	389, 584, 278, 333, 278, 278, 556, 556, 556, 556, // * + , - . / 0 1 2 3
	556, 556, 556, 556, 556, 556, 278, 278, 584, 584, // 4 5 6 7 8 9 : ; < =
	584, 556, 1015, 667, 667, 722, 722, 667, 611, 778, // > ? @ A B C D E F G
	722, 278, 500, 667, 556, 833, 722, 778, 667, 778, // H I J K L M N O P Q
	722, 667, 611, 722, 667, 944, 667, 667, 611, 278, // R S T U V W X Y Z [
	278, 278, 469, 556, 333, 556, 556, 500, 556, 556, // \ ] ^ _ ` a b c d e
	278, 556, 556, 222, 222, 500, 222, 833, 556, 556, // f g h i j k l m n o
	556, 556, 333, 500, 278, 556, 500, 722, 500, 500, // p q r s t u v w x y
	500, 334, 260, 334, 584, // z { | } ~
}

// textWidth measures s rendered in Helvetica at the given size. Runes
// outside the ASCII table fall back to the average letter advance.
func textWidth(s string, size float64) float64 {
	total := 0
	for _, r := range s {
		if r >= 32 && r <= 126 {
			total += helveticaWidths[r-32]
		} else {
			total += 556
		}
	}
	return float64(total) * size / 1000
}
