package dataprocessing

import (
	"newswire/internal/config"
)

// DefaultUniverse is the built-in equity ticker universe. Callers may
// override it through configuration; membership in this set is what
// brings an article into scope.
var DefaultUniverse = []string{
	"AAPL", "MSFT", "NVDA", "AVGO", "ADBE", "UNH", "JNJ", "PFE", "MRK", "ABBV",
	"JPM", "BAC", "WFC", "GS", "MS", "AMZN", "TSLA", "HD", "MCD", "NKE", "GOOGL",
	"META", "DIS", "VZ", "CMCSA", "PG", "KO", "PEP", "WMT", "COST", "XOM", "CVX",
	"COP", "BA", "UNP", "HON", "NEE", "DUK", "SO", "PLD", "AMT", "CCI", "LIN", "SHW", "DOW",
}

func products(rules ...config.ProductRule) []config.ProductRule {
	return rules
}

func rule(pattern, token string) config.ProductRule {
	return config.ProductRule{Pattern: pattern, Token: token}
}

// DefaultRules returns the built-in per-ticker masking rule tables:
// company-name alternations (aliases, legal suffixes, the symbol
// itself) and ordered product patterns. Static configuration; loaded
// once and shared read-only.
func DefaultRules() map[string]config.TickerRules {
	return map[string]config.TickerRules{
		"AAPL": {
			Company: `\b(Apple(?:\s+Inc\.?)?|AAPL)\b`,
			Products: products(
				rule(`\b(iPhone)\b`, "[Product 1]"),
				rule(`\b(iPad)\b`, "[Product 2]"),
				rule(`\b(MacBook|Mac)\b`, "[Product 3]"),
				rule(`\b(Apple\s+Watch)\b`, "[Product 4]"),
				rule(`\b(AirPods)\b`, "[Product 5]"),
			),
		},
		"MSFT": {
			Company: `\b(Microsoft(?:\s+Corp(?:oration)?\.?)?|MSFT)\b`,
			Products: products(
				rule(`\b(Windows)\b`, "[Product 1]"),
				rule(`\b(Office)\b`, "[Product 2]"),
				rule(`\b(Azure)\b`, "[Product 3]"),
				rule(`\b(Xbox)\b`, "[Product 4]"),
				rule(`\b(Surface)\b`, "[Product 5]"),
			),
		},
		"NVDA": {
			Company: `\b(Nvidia(?:\s+Corporation)?|NVIDIA|NVDA)\b`,
			Products: products(
				rule(`\b(GeForce)\b`, "[Product 1]"),
				rule(`\b(Quadro)\b`, "[Product 2]"),
				rule(`\b(Tesla)\b`, "[Product 3]"),
			),
		},
		"AVGO": {
			Company: `\b(Broadcom(?:\s+Inc\.?)?|AVGO)\b`,
			Products: products(
				rule(`\b(chip|semiconductor)\b`, "[Product 1]"),
			),
		},
		"ADBE": {
			Company: `\b(Adobe(?:\s+Inc\.?)?|ADBE)\b`,
			Products: products(
				rule(`\b(Photoshop)\b`, "[Product 1]"),
				rule(`\b(Illustrator)\b`, "[Product 2]"),
				rule(`\b(Premiere)\b`, "[Product 3]"),
				rule(`\b(Acrobat)\b`, "[Product 4]"),
			),
		},
		"UNH": {
			Company: `\b(UnitedHealth(?:\s+Group)?(?:\s+Inc\.?)?|UNH)\b`,
			Products: products(
				rule(`\b(Optum)\b`, "[Product 1]"),
				rule(`\b(UnitedHealthcare)\b`, "[Product 2]"),
			),
		},
		"JNJ": {
			Company: `\b(Johnson\s*&?\s*Johnson|JNJ)\b`,
			Products: products(
				rule(`\b(Tylenol)\b`, "[Product 1]"),
				rule(`\b(Neutrogena)\b`, "[Product 2]"),
				rule(`\b(Band[-\s]?Aid)\b`, "[Product 3]"),
			),
		},
		"PFE": {
			Company: `\b(Pfizer(?:\s+Inc\.?)?|PFE)\b`,
			Products: products(
				rule(`\b(Lipitor)\b`, "[Product 1]"),
				rule(`\b(Viagra)\b`, "[Product 2]"),
				rule(`\b(Pfizer\s+vaccine)\b`, "[Product 3]"),
			),
		},
		"MRK": {
			Company: `\b(Merck(?:\s+&\s+Co\.?|\s+Co\.?)?|MRK)\b`,
			Products: products(
				rule(`\b(Keytruda)\b`, "[Product 1]"),
				rule(`\b(Gardasil)\b`, "[Product 2]"),
			),
		},
		"ABBV": {
			Company: `\b(AbbVie(?:\s+Inc\.?)?|ABBV)\b`,
			Products: products(
				rule(`\b(Humira)\b`, "[Product 1]"),
			),
		},
		"JPM": {
			Company: `\b(JPMorgan(?:\s+Chase(?:\s+&\s+Co\.?)?)?|JPM)\b`,
			Products: products(
				rule(`\b(Chase Sapphire)\b`, "[Product 1]"),
				rule(`\b(Chase Freedom)\b`, "[Product 2]"),
			),
		},
		"BAC": {
			Company: `\b(Bank\s+of\s+America(?:\s+Corp\.?)?|BAC)\b`,
			Products: products(
				rule(`\b(Chase)\b`, "[Product 1]"),
			),
		},
		"WFC": {
			Company: `\b(Wells\s+Fargo(?:\s+&\s+Company)?|WFC)\b`,
		},
		"GS": {
			Company: `\b(Goldman\s+Sachs(?:\s+Group)?|GS)\b`,
			Products: products(
				rule(`\b(Marcus)\b`, "[Product 1]"),
			),
		},
		"MS": {
			Company: `\b(Morgan\s+Stanley|MS)\b`,
			Products: products(
				rule(`\b(Wealth Management)\b`, "[Product 1]"),
			),
		},
		"AMZN": {
			Company: `\b(Amazon(?:\.com)?(?:\s+Inc\.?)?|AMZN)\b`,
			Products: products(
				rule(`\b(Amazon\s+Prime)\b`, "[Product 1]"),
				rule(`\b(AWS|Amazon\s+Web\s+Services)\b`, "[Product 2]"),
				rule(`\b(Kindle)\b`, "[Product 3]"),
				rule(`\b(Echo)\b`, "[Product 4]"),
			),
		},
		"TSLA": {
			Company: `\b(Tesla(?:\s+Inc\.?)?|TSLA)\b`,
			Products: products(
				rule(`\b(Model\s*S)\b`, "[Product 1]"),
				rule(`\b(Model\s*3)\b`, "[Product 2]"),
				rule(`\b(Model\s*X)\b`, "[Product 3]"),
				rule(`\b(Model\s*Y)\b`, "[Product 4]"),
				rule(`\b(Cybertruck)\b`, "[Product 5]"),
			),
		},
		"HD": {
			Company: `\b(Home\s+Depot(?:\s+Inc\.?)?|HD)\b`,
		},
		"MCD": {
			Company: `\b(McDonald(?:'?s)?(?:\s+Corporation)?|MCD)\b`,
			Products: products(
				rule(`\b(Big\s+Mac)\b`, "[Product 1]"),
				rule(`\b(McCafe)\b`, "[Product 2]"),
				rule(`\b(McFlurry)\b`, "[Product 3]"),
			),
		},
		"NKE": {
			Company: `\b(Nike(?:\s+Inc\.?)?|NKE)\b`,
			Products: products(
				rule(`\b(Air\s+Jordan)\b`, "[Product 1]"),
				rule(`\b(Nike\s+Air)\b`, "[Product 2]"),
				rule(`\b(Dunk)\b`, "[Product 3]"),
			),
		},
		"GOOGL": {
			Company: `\b(Alphabet(?:\s+Inc\.?)?|Google(?:\s+LLC)?|GOOGL)\b`,
			Products: products(
				rule(`\b(Google\s+Search)\b`, "[Product 1]"),
				rule(`\b(Android)\b`, "[Product 2]"),
				rule(`\b(YouTube)\b`, "[Product 3]"),
				rule(`\b(Pixel)\b`, "[Product 4]"),
			),
		},
		"META": {
			Company: `\b(Meta(?:\s+Platforms)?(?:\s+Inc\.?)?|META)\b`,
			Products: products(
				rule(`\b(Facebook)\b`, "[Product 1]"),
				rule(`\b(Instagram)\b`, "[Product 2]"),
				rule(`\b(WhatsApp)\b`, "[Product 3]"),
				rule(`\b(Oculus)\b`, "[Product 4]"),
			),
		},
		"DIS": {
			Company: `\b(Walt\s+Disney(?:\s+Company)?|DIS)\b`,
			Products: products(
				rule(`\b(Disney\+)\b`, "[Product 1]"),
				rule(`\b(Marvel)\b`, "[Product 2]"),
				rule(`\b(Pixar)\b`, "[Product 3]"),
				rule(`\b(Star\s+Wars)\b`, "[Product 4]"),
			),
		},
		"VZ": {
			Company: `\b(Verizon(?:\s+Communications)?(?:\s+Inc\.?)?|VZ)\b`,
			Products: products(
				rule(`\b(5G)\b`, "[Product 1]"),
				rule(`\b(Fios)\b`, "[Product 2]"),
			),
		},
		"CMCSA": {
			Company: `\b(Comcast(?:\s+Corporation)?|CMCSA)\b`,
			Products: products(
				rule(`\b(Xfinity)\b`, "[Product 1]"),
			),
		},
		"PG": {
			Company: `\b(Procter\s*&?\s*Gamble(?:\s+Co\.?)?|PG)\b`,
			Products: products(
				rule(`\b(Tide)\b`, "[Product 1]"),
				rule(`\b(Pampers)\b`, "[Product 2]"),
				rule(`\b(Gillette)\b`, "[Product 3]"),
			),
		},
		"KO": {
			Company: `\b(Coca[-\s]?Cola(?:\s+Company)?|KO)\b`,
			Products: products(
				rule(`\b(Coke|Diet\s+Coke)\b`, "[Product 1]"),
				rule(`\b(Sprite)\b`, "[Product 2]"),
			),
		},
		"PEP": {
			Company: `\b(PepsiCo(?:\s+Inc\.?)?|PEP)\b`,
			Products: products(
				rule(`\b(Pepsi)\b`, "[Product 1]"),
				rule(`\b(Lay'?s)\b`, "[Product 2]"),
				rule(`\b(Gatorade)\b`, "[Product 3]"),
			),
		},
		"WMT": {
			Company: `\b(Walmart(?:\s+Inc\.?)?|WMT)\b`,
			Products: products(
				rule(`\b(Walmart\+?)\b`, "[Product 1]"),
				rule(`\b(Sam'?s\s+Club)\b`, "[Product 2]"),
			),
		},
		"COST": {
			Company: `\b(Costco(?:\s+Wholesale(?:\s+Corporation)?)?|COST)\b`,
		},
		"XOM": {
			Company: `\b(ExxonMobil|XOM)\b`,
		},
		"CVX": {
			Company: `\b(Chevron(?:\s+Corporation)?|CVX)\b`,
		},
		"COP": {
			Company: `\b(ConocoPhillips|COP)\b`,
		},
		"BA": {
			Company: `\b(Boeing(?:\s+Co\.?)?|BA)\b`,
			Products: products(
				rule(`\b(737|787|777)\b`, "[Product 1]"),
			),
		},
		"UNP": {
			Company: `\b(Union\s+Pacific(?:\s+Corporation)?|UNP)\b`,
		},
		"HON": {
			Company: `\b(Honeywell(?:\s+International)?(?:\s+Inc\.?)?|HON)\b`,
			Products: products(
				rule(`\b(Honeywell\s+Aerospace)\b`, "[Product 1]"),
			),
		},
		"NEE": {
			Company: `\b(NextEra(?:\s+Energy)?(?:\s+Inc\.?)?|NEE)\b`,
		},
		"DUK": {
			Company: `\b(Duke\s+Energy(?:\s+Corp\.?)?|DUK)\b`,
		},
		"SO": {
			Company: `\b(Southern\s+Company(?:\s+Inc\.?)?|SO)\b`,
		},
		"PLD": {
			Company: `\b(Prologis(?:\s+Inc\.?)?|PLD)\b`,
		},
		"AMT": {
			Company: `\b(American\s+Tower(?:\s+Corporation)?|AMT)\b`,
		},
		"CCI": {
			Company: `\b(Crown\s+Castle(?:\s+International)?(?:\s+Inc\.?)?|CCI)\b`,
		},
		"LIN": {
			Company: `\b(Linde(?:\s+plc)?|LIN)\b`,
		},
		"SHW": {
			Company: `\b(Sherwin[-\s]?Williams(?:\s+Co\.?)?|SHW)\b`,
		},
		"DOW": {
			Company: `\b(Dow(?:\s+Inc\.?)?|DOW)\b`,
		},
	}
}
