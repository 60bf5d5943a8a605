package kana

import "github.com/vytor/kanaflash/internal/models"

var hiraganaSeion = []models.KanaItem{
	{Kana: "あ", Romaji: "a"}, {Kana: "い", Romaji: "i"}, {Kana: "う", Romaji: "u"}, {Kana: "え", Romaji: "e"}, {Kana: "お", Romaji: "o"},
	{Kana: "か", Romaji: "ka"}, {Kana: "き", Romaji: "ki"}, {Kana: "く", Romaji: "ku"}, {Kana: "け", Romaji: "ke"}, {Kana: "こ", Romaji: "ko"},
	{Kana: "さ", Romaji: "sa"}, {Kana: "し", Romaji: "shi"}, {Kana: "す", Romaji: "su"}, {Kana: "せ", Romaji: "se"}, {Kana: "そ", Romaji: "so"},
	{Kana: "た", Romaji: "ta"}, {Kana: "ち", Romaji: "chi"}, {Kana: "つ", Romaji: "tsu"}, {Kana: "て", Romaji: "te"}, {Kana: "と", Romaji: "to"},
	{Kana: "な", Romaji: "na"}, {Kana: "に", Romaji: "ni"}, {Kana: "ぬ", Romaji: "nu"}, {Kana: "ね", Romaji: "ne"}, {Kana: "の", Romaji: "no"},
	{Kana: "は", Romaji: "ha"}, {Kana: "ひ", Romaji: "hi"}, {Kana: "ふ", Romaji: "fu"}, {Kana: "へ", Romaji: "he"}, {Kana: "ほ", Romaji: "ho"},
	{Kana: "ま", Romaji: "ma"}, {Kana: "み", Romaji: "mi"}, {Kana: "む", Romaji: "mu"}, {Kana: "め", Romaji: "me"}, {Kana: "も", Romaji: "mo"},
	{Kana: "や", Romaji: "ya"}, {Kana: "ゆ", Romaji: "yu"}, {Kana: "よ", Romaji: "yo"}, {Kana: "ら", Romaji: "ra"}, {Kana: "り", Romaji: "ri"},
	{Kana: "る", Romaji: "ru"}, {Kana: "れ", Romaji: "re"}, {Kana: "ろ", Romaji: "ro"}, {Kana: "わ", Romaji: "wa"}, {Kana: "を", Romaji: "wo"},
	{Kana: "ん", Romaji: "n"},
}

var hiraganaDakuon = []models.KanaItem{
	{Kana: "が", Romaji: "ga"}, {Kana: "ぎ", Romaji: "gi"}, {Kana: "ぐ", Romaji: "gu"}, {Kana: "げ", Romaji: "ge"}, {Kana: "ご", Romaji: "go"},
	{Kana: "ざ", Romaji: "za"}, {Kana: "じ", Romaji: "ji"}, {Kana: "ず", Romaji: "zu"}, {Kana: "ぜ", Romaji: "ze"}, {Kana: "ぞ", Romaji: "zo"},
	{Kana: "だ", Romaji: "da"}, {Kana: "で", Romaji: "de"}, {Kana: "ど", Romaji: "do"}, {Kana: "ば", Romaji: "ba"}, {Kana: "び", Romaji: "bi"},
	{Kana: "ぶ", Romaji: "bu"}, {Kana: "べ", Romaji: "be"}, {Kana: "ぼ", Romaji: "bo"}, {Kana: "ぱ", Romaji: "pa"}, {Kana: "ぴ", Romaji: "pi"},
	{Kana: "ぷ", Romaji: "pu"}, {Kana: "ぺ", Romaji: "pe"}, {Kana: "ぽ", Romaji: "po"},
}

var hiraganaYouon = []models.KanaItem{
	{Kana: "きゃ", Romaji: "kya"}, {Kana: "きゅ", Romaji: "kyu"}, {Kana: "きょ", Romaji: "kyo"}, {Kana: "しゃ", Romaji: "sha"}, {Kana: "しゅ", Romaji: "shu"},
	{Kana: "しょ", Romaji: "sho"}, {Kana: "ちゃ", Romaji: "cha"}, {Kana: "ちゅ", Romaji: "chu"}, {Kana: "ちょ", Romaji: "cho"}, {Kana: "にゃ", Romaji: "nya"},
	{Kana: "にゅ", Romaji: "nyu"}, {Kana: "にょ", Romaji: "nyo"}, {Kana: "ひゃ", Romaji: "hya"}, {Kana: "ひゅ", Romaji: "hyu"}, {Kana: "ひょ", Romaji: "hyo"},
	{Kana: "みゃ", Romaji: "mya"}, {Kana: "みゅ", Romaji: "myu"}, {Kana: "みょ", Romaji: "myo"}, {Kana: "りゃ", Romaji: "rya"}, {Kana: "りゅ", Romaji: "ryu"},
	{Kana: "りょ", Romaji: "ryo"}, {Kana: "ぎゃ", Romaji: "gya"}, {Kana: "ぎゅ", Romaji: "gyu"}, {Kana: "ぎょ", Romaji: "gyo"}, {Kana: "じゃ", Romaji: "ja"},
	{Kana: "じゅ", Romaji: "ju"}, {Kana: "じょ", Romaji: "jo"}, {Kana: "びゃ", Romaji: "bya"}, {Kana: "びゅ", Romaji: "byu"}, {Kana: "びょ", Romaji: "byo"},
	{Kana: "ぴゃ", Romaji: "pya"}, {Kana: "ぴゅ", Romaji: "pyu"}, {Kana: "ぴょ", Romaji: "pyo"},
}

var katakanaSeion = []models.KanaItem{
	{Kana: "ア", Romaji: "a"}, {Kana: "イ", Romaji: "i"}, {Kana: "ウ", Romaji: "u"}, {Kana: "エ", Romaji: "e"}, {Kana: "オ", Romaji: "o"},
	{Kana: "カ", Romaji: "ka"}, {Kana: "キ", Romaji: "ki"}, {Kana: "ク", Romaji: "ku"}, {Kana: "ケ", Romaji: "ke"}, {Kana: "コ", Romaji: "ko"},
	{Kana: "サ", Romaji: "sa"}, {Kana: "シ", Romaji: "shi"}, {Kana: "ス", Romaji: "su"}, {Kana: "セ", Romaji: "se"}, {Kana: "ソ", Romaji: "so"},
	{Kana: "タ", Romaji: "ta"}, {Kana: "チ", Romaji: "chi"}, {Kana: "ツ", Romaji: "tsu"}, {Kana: "テ", Romaji: "te"}, {Kana: "ト", Romaji: "to"},
	{Kana: "ナ", Romaji: "na"}, {Kana: "ニ", Romaji: "ni"}, {Kana: "ヌ", Romaji: "nu"}, {Kana: "ネ", Romaji: "ne"}, {Kana: "ノ", Romaji: "no"},
	{Kana: "ハ", Romaji: "ha"}, {Kana: "ヒ", Romaji: "hi"}, {Kana: "フ", Romaji: "fu"}, {Kana: "ヘ", Romaji: "he"}, {Kana: "ホ", Romaji: "ho"},
	{Kana: "マ", Romaji: "ma"}, {Kana: "ミ", Romaji: "mi"}, {Kana: "ム", Romaji: "mu"}, {Kana: "メ", Romaji: "me"}, {Kana: "モ", Romaji: "mo"},
	{Kana: "ヤ", Romaji: "ya"}, {Kana: "ユ", Romaji: "yu"}, {Kana: "ヨ", Romaji: "yo"}, {Kana: "ラ", Romaji: "ra"}, {Kana: "リ", Romaji: "ri"},
	{Kana: "ル", Romaji: "ru"}, {Kana: "レ", Romaji: "re"}, {Kana: "ロ", Romaji: "ro"}, {Kana: "ワ", Romaji: "wa"}, {Kana: "ヲ", Romaji: "wo"},
	{Kana: "ン", Romaji: "n"},
}

var katakanaDakuon = []models.KanaItem{
	{Kana: "ガ", Romaji: "ga"}, {Kana: "ギ", Romaji: "gi"}, {Kana: "グ", Romaji: "gu"}, {Kana: "ゲ", Romaji: "ge"}, {Kana: "ゴ", Romaji: "go"},
	{Kana: "ザ", Romaji: "za"}, {Kana: "ジ", Romaji: "ji"}, {Kana: "ズ", Romaji: "zu"}, {Kana: "ゼ", Romaji: "ze"}, {Kana: "ゾ", Romaji: "zo"},
	{Kana: "ダ", Romaji: "da"}, {Kana: "デ", Romaji: "de"}, {Kana: "ド", Romaji: "do"}, {Kana: "バ", Romaji: "ba"}, {Kana: "ビ", Romaji: "bi"},
	{Kana: "ブ", Romaji: "bu"}, {Kana: "ベ", Romaji: "be"}, {Kana: "ボ", Romaji: "bo"}, {Kana: "パ", Romaji: "pa"}, {Kana: "ピ", Romaji: "pi"},
	{Kana: "プ", Romaji: "pu"}, {Kana: "ペ", Romaji: "pe"}, {Kana: "ポ", Romaji: "po"},
}

var katakanaYouon = []models.KanaItem{
	{Kana: "キャ", Romaji: "kya"}, {Kana: "キュ", Romaji: "kyu"}, {Kana: "キョ", Romaji: "kyo"}, {Kana: "シャ", Romaji: "sha"}, {Kana: "シュ", Romaji: "shu"},
	{Kana: "ショ", Romaji: "sho"}, {Kana: "チャ", Romaji: "cha"}, {Kana: "チュ", Romaji: "chu"}, {Kana: "チョ", Romaji: "cho"}, {Kana: "ニャ", Romaji: "nya"},
	{Kana: "ニュ", Romaji: "nyu"}, {Kana: "ニョ", Romaji: "nyo"}, {Kana: "ヒャ", Romaji: "hya"}, {Kana: "ヒュ", Romaji: "hyu"}, {Kana: "ヒョ", Romaji: "hyo"},
	{Kana: "ミャ", Romaji: "mya"}, {Kana: "ミュ", Romaji: "myu"}, {Kana: "ミョ", Romaji: "myo"}, {Kana: "リャ", Romaji: "rya"}, {Kana: "リュ", Romaji: "ryu"},
	{Kana: "リョ", Romaji: "ryo"}, {Kana: "ギャ", Romaji: "gya"}, {Kana: "ギュ", Romaji: "gyu"}, {Kana: "ギョ", Romaji: "gyo"}, {Kana: "ジャ", Romaji: "ja"},
	{Kana: "ジュ", Romaji: "ju"}, {Kana: "ジョ", Romaji: "jo"}, {Kana: "ビャ", Romaji: "bya"}, {Kana: "ビュ", Romaji: "byu"}, {Kana: "ビョ", Romaji: "byo"},
	{Kana: "ピャ", Romaji: "pya"}, {Kana: "ピュ", Romaji: "pyu"}, {Kana: "ピョ", Romaji: "pyo"},
}
