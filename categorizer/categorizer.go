package categorizer

import (
	"regexp"
	"sort"
	"strings"

	"fintrack/models"
)

const (
	CategoryIncome   = "Income"
	CategoryBanking  = "Banking & Finance"
	CategoryShopping = "Shopping"

	maxSuggestions = 5
)

var (
	cardNumberPattern  = regexp.MustCompile(`\d{4}\s*\d{4}\s*\d{4}\s*\d{4}`)
	checkNumberPattern = regexp.MustCompile(`check\s*#?\s*\d+`)
)

// fallbackRule 关键词都未命中时按顺序尝试的模式规则
type fallbackRule struct {
	category string
	match    func(desc string) bool
}

func containsAny(words ...string) func(string) bool {
	return func(desc string) bool {
		for _, w := range words {
			if strings.Contains(desc, w) {
				return true
			}
		}
		return false
	}
}

var fallbackRules = []fallbackRule{
	{CategoryIncome, containsAny("deposit", "transfer in", "payment received", "paycheck", "salary")},
	{CategoryBanking, containsAny("withdrawal", "transfer out", "payment to")},
	{CategoryBanking, containsAny("fee", "charge", "penalty", "overdraft")},
	{CategoryBanking, cardNumberPattern.MatchString},
	{CategoryBanking, checkNumberPattern.MatchString},
	{CategoryBanking, containsAny("atm")},
	{CategoryShopping, containsAny("online", "web", "digital")},
}

// Categorizer 基于关键词打分的交易自动分类器
type Categorizer struct {
	rules *RuleTable
}

// New 使用给定规则表创建分类器；rules 为 nil 时使用内置规则表副本
func New(rules *RuleTable) *Categorizer {
	if rules == nil {
		rules = DefaultRuleTable()
	}
	return &Categorizer{rules: rules}
}

// Rules 返回分类器使用的规则表
func (c *Categorizer) Rules() *RuleTable {
	return c.rules
}

func normalize(description string) string {
	return strings.ToLower(strings.TrimSpace(description))
}

// Categorize 返回描述最匹配的类别
// 得分最高者胜出，同分取规则表中靠前的类别；全部未命中时依次尝试模式规则，最终返回 Other
func (c *Categorizer) Categorize(description string) string {
	desc := normalize(description)
	if desc == "" {
		return models.CategoryOther
	}

	scores := c.rules.score(desc)
	if len(scores) > 0 {
		best := scores[0]
		for _, s := range scores[1:] {
			if s.points > best.points {
				best = s
			}
		}
		return best.category
	}

	for _, r := range fallbackRules {
		if r.match(desc) {
			return r.category
		}
	}
	return models.CategoryOther
}

// Suggest 按得分降序返回最多 5 个候选类别，同分保持规则表顺序
// 没有任何类别得分时返回 [Other]，不使用模式规则
func (c *Categorizer) Suggest(description string) []string {
	desc := normalize(description)
	if desc == "" {
		return []string{models.CategoryOther}
	}

	scores := c.rules.score(desc)
	if len(scores) == 0 {
		return []string{models.CategoryOther}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].points > scores[j].points
	})
	if len(scores) > maxSuggestions {
		scores = scores[:maxSuggestions]
	}

	out := make([]string, 0, len(scores))
	for _, s := range scores {
		out = append(out, s.category)
	}
	return out
}

// Categories 返回所有类别名（含 Other）
func (c *Categorizer) Categories() []string {
	return append(c.rules.Categories(), models.CategoryOther)
}
