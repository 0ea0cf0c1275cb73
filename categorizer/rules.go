package categorizer

import (
	"regexp"
	"strings"
	"sync"
)

// Rule 一个类别及其匹配关键词
type Rule struct {
	Category string
	Keywords []string
}

type keyword struct {
	text string
	word *regexp.Regexp // \b + keyword + \b
}

type entry struct {
	category string
	keywords []keyword
	seen     map[string]bool
}

// RuleTable 有序的 类别 -> 关键词 规则表
// 遍历顺序即声明顺序，得分相同时靠前的类别胜出。可被多个 Categorizer 共享，并发安全。
type RuleTable struct {
	mu      sync.RWMutex
	entries []*entry
	index   map[string]*entry
}

// NewRuleTable 按给定顺序构建规则表
func NewRuleTable(rules ...Rule) *RuleTable {
	t := &RuleTable{index: make(map[string]*entry)}
	for _, r := range rules {
		t.add(r.Category, r.Keywords)
	}
	return t
}

// DefaultRuleTable 返回内置规则表的独立副本
func DefaultRuleTable() *RuleTable {
	return NewRuleTable(DefaultRules()...)
}

// Add 追加关键词；类别不存在时追加到表尾
func (t *RuleTable) Add(category string, keywords ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.add(category, keywords)
}

func (t *RuleTable) add(category string, keywords []string) {
	e, ok := t.index[category]
	if !ok {
		e = &entry{category: category, seen: make(map[string]bool)}
		t.entries = append(t.entries, e)
		t.index[category] = e
	}
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		e.keywords = append(e.keywords, keyword{
			text: kw,
			word: regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`),
		})
		e.seen[kw] = true
	}
}

// Has 类别是否存在
func (t *RuleTable) Has(category string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.index[category]
	return ok
}

// HasKeyword 类别下是否已有该关键词
func (t *RuleTable) HasKeyword(category, kw string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.index[category]
	return ok && e.seen[strings.ToLower(kw)]
}

// Categories 按声明顺序返回所有类别名
func (t *RuleTable) Categories() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		names = append(names, e.category)
	}
	return names
}

// Rules 返回规则表快照
func (t *RuleTable) Rules() []Rule {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rules := make([]Rule, 0, len(t.entries))
	for _, e := range t.entries {
		kws := make([]string, 0, len(e.keywords))
		for _, k := range e.keywords {
			kws = append(kws, k.text)
		}
		rules = append(rules, Rule{Category: e.category, Keywords: kws})
	}
	return rules
}

type score struct {
	category string
	points   int
}

// score 计算每个类别的得分，只返回得分 > 0 的类别，保持声明顺序
func (t *RuleTable) score(desc string) []score {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var scores []score
	for _, e := range t.entries {
		points := 0
		for _, kw := range e.keywords {
			if !strings.Contains(desc, kw.text) {
				continue
			}
			switch {
			case kw.text == desc:
				points += 10
			case kw.word.MatchString(desc):
				points += 5
			default:
				points++
			}
		}
		if points > 0 {
			scores = append(scores, score{category: e.category, points: points})
		}
	}
	return scores
}
