package generator

import "strings"

// 固定的英文停用词表（含常见缩写），不做国际化
const stopwordList = `
a an and are as at be by for from has have if in into is it its of on that
the to was were will with this those these your you i we our us their they
them he she his her or nor not but than then so too very can just should
would could about above after again against all am any because been before
being below between both did do does doing down during each few further
here how more most other over own same some such under until up what when
where which while who whom why yourself themselves itself ourselves myself
don't can't won't shouldn't couldn't isn't aren't wasn't weren't i'm you're
we're they're it's that's there's here's what's who's didn't haven't hasn't
hadn't doesn't wouldn't mustn't mightn't needn't
`

var stopwords = func() map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(stopwordList) {
		set[w] = struct{}{}
	}
	return set
}()
