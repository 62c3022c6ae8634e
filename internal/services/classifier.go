package services

import (
	"regexp"
	"strings"

	"github.com/trugenie/go-tally-extraction/internal/models"
)

// Bucket is a semantic ledger category derived from group names.
type Bucket string

const (
	BucketBankAccounts    Bucket = "bank_accounts"
	BucketCashAccounts    Bucket = "cash_accounts"
	BucketFixedAssets     Bucket = "fixed_assets"
	BucketLoans           Bucket = "loans"
	BucketSundryDebtors   Bucket = "sundry_debtors"
	BucketSundryCreditors Bucket = "sundry_creditors"
	BucketAssets          Bucket = "assets"
	BucketLiabilities     Bucket = "liabilities"
)

// maxLineageDepth bounds the walk up the group tree.
const maxLineageDepth = 32

var bucketPatterns = map[Bucket]*regexp.Regexp{
	BucketBankAccounts:    regexp.MustCompile(`(?i)^bank accounts?$`),
	BucketCashAccounts:    regexp.MustCompile(`(?i)^cash[- ]in[- ]hand$`),
	BucketFixedAssets:     regexp.MustCompile(`(?i)^fixed assets?$`),
	BucketLoans:           regexp.MustCompile(`(?i)^((secured|unsecured) loans?|loans \(liability\))$`),
	BucketSundryDebtors:   regexp.MustCompile(`(?i)^sundry debtors$`),
	BucketSundryCreditors: regexp.MustCompile(`(?i)^sundry creditors$`),
	BucketAssets: regexp.MustCompile(`(?i)^(bank accounts?|cash[- ]in[- ]hand|fixed assets?|sundry debtors|` +
		`deposits \(asset\)|loans & advances \(asset\)|investments|current assets|stock[- ]in[- ]hand)$`),
	BucketLiabilities: regexp.MustCompile(`(?i)^(sundry creditors|(secured|unsecured) loans?|loans \(liability\)|` +
		`capital account|reserves & surplus|duties & taxes|current liabilities|provisions)$`),
}

// GroupTree links groups to their parents by case-insensitive name.
type GroupTree struct {
	parents map[string]string
}

func NewGroupTree(groups []models.Group) GroupTree {
	t := GroupTree{parents: make(map[string]string, len(groups))}
	for _, g := range groups {
		parent := ""
		if !g.IsRoot() {
			parent = g.Parent
		}
		t.parents[groupKey(g.Name)] = parent
	}
	return t
}

func groupKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lineage is group followed by its ancestors, root last. The walk stops at a root, an
// unknown group, a repeated group or maxLineageDepth steps.
func (t GroupTree) Lineage(group string) []string {
	var lineage []string
	visited := map[string]bool{}
	current := strings.TrimSpace(group)
	for depth := 0; current != "" && depth < maxLineageDepth; depth++ {
		key := groupKey(current)
		if visited[key] || key == groupKey(models.RootParent) {
			break
		}
		visited[key] = true
		lineage = append(lineage, current)

		parent, ok := t.parents[key]
		if !ok {
			break
		}
		current = parent
	}
	return lineage
}

// Classifier answers bucket and group membership for ledgers.
type Classifier struct {
	tree GroupTree
}

func NewClassifier(groups []models.Group) Classifier {
	return Classifier{tree: NewGroupTree(groups)}
}

func (c Classifier) InBucket(l models.Ledger, b Bucket) bool {
	pattern, ok := bucketPatterns[b]
	if !ok {
		return false
	}
	for _, g := range c.tree.Lineage(l.ParentGroup) {
		if pattern.MatchString(g) {
			return true
		}
	}
	return false
}

// UnderGroup reports whether group is the ledger's parent or one of its ancestors.
func (c Classifier) UnderGroup(l models.Ledger, group string) bool {
	want := groupKey(group)
	for _, g := range c.tree.Lineage(l.ParentGroup) {
		if groupKey(g) == want {
			return true
		}
	}
	return false
}

func (c Classifier) Filter(ledgers []models.Ledger, b Bucket) []models.Ledger {
	out := make([]models.Ledger, 0)
	for _, l := range ledgers {
		if c.InBucket(l, b) {
			out = append(out, l)
		}
	}
	return out
}

func (c Classifier) FilterGroup(ledgers []models.Ledger, group string) []models.Ledger {
	out := make([]models.Ledger, 0)
	for _, l := range ledgers {
		if c.UnderGroup(l, group) {
			out = append(out, l)
		}
	}
	return out
}
