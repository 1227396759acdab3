// Package goquery implements the DOM-level content extraction heuristics:
// boilerplate removal, content-pattern detection, supplemental content
// recovery, conversion preprocessing and the structural Markdown walk.
package goquery

// Category classifies a structural selector.
type Category string

// Selector categories. Structural categories (header, footer, navbar,
// sidebar) are subject to the content budget; unwanted is not.
const (
	CategoryHeader   Category = "header"
	CategoryFooter   Category = "footer"
	CategoryNavbar   Category = "navbar"
	CategorySidebar  Category = "sidebar"
	CategoryUnwanted Category = "unwanted"
)

// SelectorRule pairs a CSS selector with its category. Rules are pure
// matching data; removal policy lives in the remover.
type SelectorRule struct {
	Selector string
	Category Category
}

// boilerplateRules is the ordered selector taxonomy for structural chrome.
// An element matching a structural rule is preserved when its text exceeds
// contentBudget characters; unwanted matches are always removed.
var boilerplateRules = []SelectorRule{
	{"header", CategoryHeader},
	{"#header", CategoryHeader},
	{".header", CategoryHeader},
	{".site-header", CategoryHeader},
	{".masthead", CategoryHeader},
	{`[role="banner"]`, CategoryHeader},

	{"footer", CategoryFooter},
	{"#footer", CategoryFooter},
	{".footer", CategoryFooter},
	{".site-footer", CategoryFooter},
	{".copyright", CategoryFooter},
	{`[role="contentinfo"]`, CategoryFooter},

	{"nav", CategoryNavbar},
	{".navbar", CategoryNavbar},
	{".main-nav", CategoryNavbar},
	{"#navbar", CategoryNavbar},
	{"#navigation", CategoryNavbar},
	{"#menu", CategoryNavbar},
	{`[role="navigation"]`, CategoryNavbar},

	{"aside", CategorySidebar},
	{".sidebar", CategorySidebar},
	{"#sidebar", CategorySidebar},
	{`[role="complementary"]`, CategorySidebar},

	{".ads", CategoryUnwanted},
	{".advertisement", CategoryUnwanted},
	{".banner", CategoryUnwanted},
	{".cookie-notice", CategoryUnwanted},
	{".popup", CategoryUnwanted},
	{".modal", CategoryUnwanted},
	{".newsletter-signup", CategoryUnwanted},
	{".cookie-banner", CategoryUnwanted},
	{".adsbygoogle", CategoryUnwanted},
	{".ad-container", CategoryUnwanted},
	{".gdpr", CategoryUnwanted},
}

// contentBudget is the text length above which a structural match is treated
// as likely main content misclassified as chrome and left in place.
const contentBudget = 1000

// suspiciousClassTokens mark class attributes associated with scripts, ads
// or tracking; a class containing any of them is stripped entirely.
var suspiciousClassTokens = []string{"js-", "ad-", "ads-", "script-", "tracking"}

// recoverySelectors are content-bearing selectors scanned, in order, when
// the primary extractor's output is too short.
var recoverySelectors = []string{
	"article", ".article", ".post", ".content", ".main-content",
	"main", "#main", "#content", ".body", ".entry-content",
	".page-content", `[role="main"]`, `[itemprop="articleBody"]`,
	".blog-post", ".text", ".publication-content", ".story",
}

// Detection thresholds. Exact cutoffs encoding a deliberately moderate
// policy that favors content retention over noise removal; none are
// configurable at runtime.
const (
	// Link-density heuristic.
	linkDensityMinAnchors    = 8
	linkDensityShortTextMax  = 20
	linkDensityShortFraction = 0.85
	linkDensityCharsPerLink  = 50

	// Keyword heuristic.
	keywordMinAnchors = 4
	keywordTextMax    = 200

	// Positional heuristic.
	firstChildMinAnchors = 5
	firstChildTextMax    = 200
	lastChildMinAnchors  = 3
	lastChildTextMax     = 150

	// Narrow-column heuristic.
	narrowWidthPercentMax = 25
	narrowMinAnchors      = 4
	narrowTextMax         = 300

	// Content-loss guard: pattern detection runs only while this
	// fraction of the original text survives structural removal.
	lossGuardRetention = 0.7

	// Recovery trigger and the minimum text for pattern detection on
	// extracted or recovered content.
	recoveryTriggerLen  = 500
	detectionMinContent = 1000

	// Minimum paragraph text for the recovery fallback scan.
	recoveryParagraphMin = 50
)

// navKeywords flag elements whose text suggests a navigation block.
var navKeywords = []string{"menu", "navigation", "liens", "links"}
