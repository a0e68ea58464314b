package stock

import (
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/etnz/stock/date"
	"github.com/spf13/cast"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Synonym tokens looked up in source file names. File names are lower-cased
// before matching, so tokens must be lower case.
var (
	whiteTokens  = []string{"白", "ホワイト", "white"}
	blackTokens  = []string{"黒", "ブラック", "black"}
	markTokens   = []string{"あり", "有り", "mark-present"}
	noMarkTokens = []string{"なし", "無し", "mark-absent"}
)

// variantFlags are the independent predicates computed on a file name.
type variantFlags struct {
	white, black, mark, noMark bool
}

// variantRule maps a combination of flags to a variant.
type variantRule struct {
	match   func(variantFlags) bool
	variant Variant
}

// variantRules are evaluated in order, the first match wins. A name must
// carry exactly one color and exactly one mark flag.
var variantRules = []variantRule{
	{func(f variantFlags) bool { return f.white && !f.black && f.noMark && !f.mark }, WhiteNoMark},
	{func(f variantFlags) bool { return f.white && !f.black && f.mark && !f.noMark }, WhiteMark},
	{func(f variantFlags) bool { return f.black && !f.white && f.noMark && !f.mark }, BlackNoMark},
	{func(f variantFlags) bool { return f.black && !f.white && f.mark && !f.noMark }, BlackMark},
}

var parenReplacer = strings.NewReplacer("（", "(", "）", ")")

// NormalizeVariant resolves the variant named by a source file name.
// It returns false if the name does not designate exactly one variant.
func NormalizeVariant(filename string) (Variant, bool) {
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	base = norm.NFC.String(base)
	base = parenReplacer.Replace(base)
	base = strings.ToLower(base)

	f := variantFlags{
		white:  containsAny(base, whiteTokens),
		black:  containsAny(base, blackTokens),
		mark:   containsAny(base, markTokens),
		noMark: containsAny(base, noMarkTokens),
	}
	for _, r := range variantRules {
		if r.match(f) {
			return r.variant, true
		}
	}
	return "", false
}

// sizeRule maps a label containing any of the tokens to a size.
type sizeRule struct {
	tokens []string
	size   Size
}

// sizeRules are evaluated in order, the first match wins: "XXL" must be
// tested before "XL" and "XL" before "L".
var sizeRules = []sizeRule{
	{[]string{"150"}, Size150},
	{[]string{"160"}, Size160},
	{[]string{"XXL", "3L"}, SizeXXL},
	{[]string{"XL", "LL"}, SizeXL},
	{[]string{"L"}, SizeL},
	{[]string{"M"}, SizeM},
	{[]string{"S"}, SizeS},
}

// NormalizeSize resolves a size label found in a cell.
// Full-width letters and digits are folded to ASCII before matching.
func NormalizeSize(value any) (Size, bool) {
	label := strings.TrimSpace(norm.NFC.String(cellText(value)))
	label = width.Fold.String(label)
	for _, r := range sizeRules {
		if containsAny(label, r.tokens) {
			return r.size, true
		}
	}
	return "", false
}

var headerDateRE = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)

// NormalizeDate resolves a header cell to a date. Time values are accepted
// directly, strings must look like YYYY-M-D or YYYY/M/D.
func NormalizeDate(value any) (date.Date, bool) {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return date.Date{}, false
		}
		return date.Of(v), true
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), "/", "-")
		if !headerDateRE.MatchString(s) {
			return date.Date{}, false
		}
		d, err := date.ParseISO(s)
		if err != nil {
			return date.Date{}, false
		}
		return d, true
	default:
		return date.Date{}, false
	}
}

// cellText returns the text of a cell value, "" for empty cells.
func cellText(value any) string {
	if value == nil {
		return ""
	}
	return cast.ToString(value)
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
