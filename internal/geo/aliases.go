package geo

// defaultAliases maps common shorthands, translations, and misspellings of
// country names to their cca3 identifier. Keys must already be in
// Normalize form; BuildIndex rejects tables that are not.
var defaultAliases = map[string]string{
	"rdc":                              "COD",
	"republique democratique du congo": "COD",
	"congo":                            "COG",
	"usa":                              "USA",
	"etats unis":                       "USA",
	"etats unis damerique":             "USA",
	"uk":                               "GBR",
	"angleterre":                       "GBR",
	"grande bretagne":                  "GBR",
	"royaume uni":                      "GBR",
	"uae":                              "ARE",
	"emirats":                          "ARE",
	"emirats arabes unis":              "ARE",
	"rsa":                              "ZAF",
	"afrique du sud":                   "ZAF",
	"hollande":                         "NLD",
	"pays bas":                         "NLD",
	"russie":                           "RUS",
	"chine":                            "CHN",
	"coree du sud":                     "KOR",
	"coree du nord":                    "PRK",
	"tchequie":                         "CZE",
	"turkiye":                          "TUR",
}

// DefaultAliases returns a copy of the built-in alias table.
func DefaultAliases() map[string]string {
	out := make(map[string]string, len(defaultAliases))
	for k, v := range defaultAliases {
		out[k] = v
	}
	return out
}
