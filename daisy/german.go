package daisy

import (
	"github.com/tarasstruk/gabriele/symbol"
)

// German returns the default German daisy wheel: every petal 1-100,
// plus composite glyphs for the Italian grave- and acute-accented
// vowels built by dead-key overstrike on top of the base vowel.
func German() Db {
	db := New()
	db.Symbols = []symbol.Symbol{
		symbol.New('.').Petal(1).Mild(),
		symbol.New(',').Petal(2).Mild(),
		symbol.New('-').Petal(3).Mild(),
		symbol.New('v').Petal(4),
		symbol.New('l').Petal(5),
		symbol.New('m').Petal(6),
		symbol.New('j').Petal(7),
		symbol.New('w').Petal(8),
		symbol.New('²').Petal(9),
		symbol.New('µ').Petal(10),
		symbol.New('f').Petal(11),
		symbol.New('^').Petal(12),
		symbol.New('>').Petal(13),
		symbol.New('´').Petal(14),
		symbol.New('+').Petal(15),
		symbol.New('1').Petal(16),
		symbol.New('2').Petal(17),
		symbol.New('3').Petal(18),
		symbol.New('4').Petal(19),
		symbol.New('5').Petal(20),
		symbol.New('6').Petal(21),
		symbol.New('7').Petal(22),
		symbol.New('8').Petal(23),
		symbol.New('9').Petal(24),
		symbol.New('0').Petal(25),
		symbol.New('E').Petal(26),
		symbol.New('|').Petal(27),
		symbol.New('B').Petal(28),
		symbol.New('F').Petal(29),
		symbol.New('P').Petal(30),
		symbol.New('S').Petal(31),
		symbol.New('Z').Petal(32),
		symbol.New('V').Petal(33),
		symbol.New('&').Petal(34),
		symbol.New('Y').Petal(35),
		symbol.New('A').Petal(36).Strong(),
		symbol.New('T').Petal(37),
		symbol.New('L').Petal(38),
		symbol.New('$').Petal(39),
		symbol.New('R').Petal(40),
		symbol.New('*').Petal(41),
		symbol.New('C').Petal(42),
		symbol.New('"').Petal(43),
		symbol.New('D').Petal(44),
		symbol.New('?').Petal(45),
		symbol.New('N').Petal(46),
		symbol.New('I').Petal(47),
		symbol.New('U').Petal(48),
		symbol.New(')').Petal(49),
		symbol.New('W').Petal(50).Strong(),
		symbol.New('_').Petal(51),
		symbol.New('=').Petal(52),
		symbol.New(';').Petal(53),
		symbol.New(':').Petal(54),
		symbol.New('M').Petal(55).Strong(),
		symbol.New('\'').Petal(56),
		symbol.New('H').Petal(57),
		symbol.New('(').Petal(58),
		symbol.New('K').Petal(59),
		symbol.New('/').Petal(60),
		symbol.New('O').Petal(61).Strong(),
		symbol.New('!').Petal(62),
		symbol.New('X').Petal(63),
		symbol.New('§').Petal(64).Strong(),
		symbol.New('Q').Petal(65).Strong(),
		symbol.New('J').Petal(66),
		symbol.New('%').Petal(67),
		symbol.New('³').Petal(68),
		symbol.New('G').Petal(69),
		symbol.New('°').Petal(70),
		symbol.New('Ü').Petal(71).Strong(),
		symbol.New('`').Petal(72).Mild(),
		symbol.New('Ö').Petal(73),
		symbol.New('<').Petal(74),
		symbol.New('Ä').Petal(75).Strong(),
		symbol.New('#').Petal(76),
		symbol.New('t').Petal(77),
		symbol.New('x').Petal(78),
		symbol.New('q').Petal(79),
		symbol.New('ß').Petal(80),
		symbol.New('ü').Petal(81),
		symbol.New('ö').Petal(82),
		symbol.New('ä').Petal(83),
		symbol.New('y').Petal(84),
		symbol.New('k').Petal(85),
		symbol.New('p').Petal(86),
		symbol.New('h').Petal(87),
		symbol.New('c').Petal(88),
		symbol.New('g').Petal(89),
		symbol.New('n').Petal(90),
		symbol.New('r').Petal(91),
		symbol.New('s').Petal(92),
		symbol.New('e').Petal(93),
		symbol.New('a').Petal(94),
		symbol.New('i').Petal(95),
		symbol.New('d').Petal(96),
		symbol.New('u').Petal(97),
		symbol.New('b').Petal(98),
		symbol.New('o').Petal(99),
		symbol.New('z').Petal(100),

		// Italian grave- and acute-accented vowels: dead-key overstrike
		// on the base vowel petal, held, then the accent petal (Mild,
		// so it does not emboss) moves the carriage on.
		symbol.New('à').Petal(94).Grave(),
		symbol.New('è').Petal(93).Grave(),
		symbol.New('ì').Petal(95).Grave(),
		symbol.New('ò').Petal(99).Grave(),
		symbol.New('ù').Petal(97).Grave(),
		symbol.New('á').Petal(94).Acute(),
		symbol.New('é').Petal(93).Acute(),
		symbol.New('í').Petal(95).Acute(),
		symbol.New('ó').Petal(99).Acute(),
		symbol.New('ú').Petal(97).Acute(),
	}
	return db
}
