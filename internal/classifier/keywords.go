package classifier

// Default keyword lists used to recognize African content. Country tokens
// and region phrases are kept disjoint; all entries are lowercase French.
var (
	defaultCountries = []string{
		"afrique", "africa", "algérie", "angola", "bénin", "botswana", "burkina", "burundi",
		"cameroun", "cap-vert", "centrafrique", "tchad", "comores", "congo", "djibouti",
		"égypte", "érythrée", "éthiopie", "gabon", "gambie", "ghana", "guinée", "kenya",
		"lesotho", "libéria", "libye", "madagascar", "malawi", "mali", "maroc", "maurice",
		"mauritanie", "mozambique", "namibie", "niger", "nigéria", "ouganda", "rwanda",
		"sénégal", "seychelles", "sierra", "somalie", "soudan", "tanzanie", "togo",
		"tunisie", "zambie", "zimbabwe", "côte", "ivoire",
	}

	defaultRegions = []string{
		"maghreb", "sahel", "afrique de l'ouest", "afrique centrale", "afrique de l'est",
		"afrique australe", "corne de l'afrique",
	}
)

// DefaultKeywordSet returns the built-in country and region keyword lists.
func DefaultKeywordSet() KeywordSet {
	countries := make([]string, len(defaultCountries))
	copy(countries, defaultCountries)
	regions := make([]string, len(defaultRegions))
	copy(regions, defaultRegions)

	return KeywordSet{Countries: countries, Regions: regions}
}
