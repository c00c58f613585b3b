package market

// stockEntry maps one lookup token to a provider-specific identifier.
// Tables are ordered slices, not maps: matching is first-match-wins and
// must stay deterministic (map iteration order would randomize ties).
type stockEntry struct {
	Token string // lowercase company name, ticker or code
	ID    string // 6-digit KRX code or US ticker
}

// Korean market lookup table. Tokens double as the classifier's KR
// token list. Substring matching means short tokens can fire inside
// unrelated longer inputs; that ambiguity is inherited behavior.
var krStocks = []stockEntry{
	{"삼성전자", "005930"},
	{"samsung", "005930"},
	{"sk하이닉스", "000660"},
	{"sk hynix", "000660"},
	{"hynix", "000660"},
	{"lg에너지솔루션", "373220"},
	{"삼성바이오로직스", "207940"},
	{"현대차", "005380"},
	{"hyundai", "005380"},
	{"기아", "000270"},
	{"kia", "000270"},
	{"셀트리온", "068270"},
	{"celltrion", "068270"},
	{"네이버", "035420"},
	{"naver", "035420"},
	{"카카오", "035720"},
	{"kakao", "035720"},
	{"포스코", "005490"},
	{"posco", "005490"},
	{"lg화학", "051910"},
	{"삼성sdi", "006400"},
	{"kb금융", "105560"},
	{"신한지주", "055550"},
	{"현대모비스", "012330"},
	{"한국전력", "015760"},
}

// krDisplayNames is the list shown to users when a Korean symbol cannot
// be resolved.
var krDisplayNames = []string{
	"삼성전자",
	"SK하이닉스",
	"LG에너지솔루션",
	"삼성바이오로직스",
	"현대차",
	"기아",
	"셀트리온",
	"NAVER",
	"카카오",
	"POSCO홀딩스",
	"LG화학",
	"삼성SDI",
	"KB금융",
	"신한지주",
	"현대모비스",
	"한국전력",
}

// US market lookup table. Includes a few non-ticker aliases (executive
// names) that the original service supported.
var usStocks = []stockEntry{
	{"apple", "AAPL"},
	{"microsoft", "MSFT"},
	{"alphabet", "GOOGL"},
	{"google", "GOOGL"},
	{"amazon", "AMZN"},
	{"tesla", "TSLA"},
	{"elon musk", "TSLA"},
	{"musk", "TSLA"},
	{"meta", "META"},
	{"facebook", "META"},
	{"nvidia", "NVDA"},
	{"netflix", "NFLX"},
	{"intel", "INTC"},
	{"amd", "AMD"},
	{"boeing", "BA"},
	{"disney", "DIS"},
	{"starbucks", "SBUX"},
	{"nike", "NKE"},
	{"mcdonald", "MCD"},
	{"coca cola", "KO"},
	{"visa", "V"},
}

// SupportedKoreanNames returns the display names of Korean instruments
// the service can resolve.
func SupportedKoreanNames() []string {
	out := make([]string, len(krDisplayNames))
	copy(out, krDisplayNames)
	return out
}
