package domain

import "errors"

var (
	ErrUnknownQuestion  = errors.New("unknown question")
	ErrOptionOutOfRange = errors.New("option index out of range")
)

// Option is one selectable answer of a question.
type Option struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// Question is a static question definition.
type Question struct {
	ID        int      `json:"id"`
	Dimension int      `json:"dimension"`
	Text      string   `json:"text"`
	Options   []Option `json:"options"`
}

// DimensionNames maps dimension number to its display name.
var DimensionNames = map[int]string{
	1: "AI卷入度",
	2: "指令驾驭力",
	3: "场景覆盖率",
	4: "创新进化力",
	5: "技术亲和度",
}

// Questions is the fixed question set, two per dimension.
var Questions = []Question{
	{
		ID:        1,
		Dimension: 1,
		Text:      "你目前在工作中使用AI工具（如ChatGPT、文心一言等）的频率是？",
		Options: []Option{
			{Text: "每天都离不开，它是我的'外挂'", Value: 3},
			{Text: "每周偶尔用几次，辅助处理一些小事", Value: 2},
			{Text: "听说过但没怎么用过，主要还是靠自己", Value: 1},
			{Text: "几乎不用，感觉那是技术人员的事", Value: 0},
		},
	},
	{
		ID:        2,
		Dimension: 1,
		Text:      "你是否购买过ChatGPT Plus、Midjourney或其他AI工具的会员？",
		Options: []Option{
			{Text: "是，长期订阅，为了效率愿意付费", Value: 3},
			{Text: "买过体验了一下，没续费", Value: 2},
			{Text: "没有，只用免费的", Value: 1},
			// passive engagement still counts
			{Text: "公司/他人给配了账号", Value: 2},
		},
	},
	{
		ID:        3,
		Dimension: 2,
		Text:      "为了让AI写出的文案更符合你的要求，你通常会怎么提问？",
		Options: []Option{
			{Text: "提供详细的角色、背景、任务目标和参考范文", Value: 3},
			{Text: "会多写几句话描述我的具体需求", Value: 2},
			{Text: "直接说'帮我写个...'", Value: 1},
			{Text: "没怎么写过/不知道还能怎么问", Value: 0},
		},
	},
	{
		ID:        4,
		Dimension: 2,
		Text:      "当你觉得AI回答得不好（胡说八道）时，你会怎么做？",
		Options: []Option{
			{Text: "我有自己的一套'指令模版'或知识库，很少翻车", Value: 3},
			{Text: "像教实习生一样，指出它的错误，补充背景信息，让它重写", Value: 2},
			{Text: "换个问题重新问，或者刷新重来", Value: 1},
			{Text: "直接放弃，觉得'AI也就那样，不好用'", Value: 0},
		},
	},
	{
		ID:        5,
		Dimension: 3,
		Text:      "你目前尝试过用AI解决哪些领域的问题？",
		Options: []Option{
			{Text: "文本写作 + 图片生成 + 数据/代码分析", Value: 3},
			{Text: "文本写作 + 图片生成", Value: 2},
			{Text: "仅限文本写作/翻译/搜索", Value: 1},
			{Text: "还没开始有效使用", Value: 0},
		},
	},
	{
		ID:        6,
		Dimension: 3,
		Text:      "除了对话，你是否尝试过用AI生成图片或辅助做PPT？",
		Options: []Option{
			{Text: "经常用，已纳入我的工作流（如做海报、配图）", Value: 3},
			{Text: "试过一两次，觉得挺好玩但还没用于工作", Value: 2},
			{Text: "没试过，不知道AI还能做这个", Value: 1},
			{Text: "不感兴趣，不如自己做得快", Value: 0},
		},
	},
	{
		ID:        7,
		Dimension: 4,
		Text:      "每周耗时1小时的重复性报表，若有机会用AI改造？",
		Options: []Option{
			{Text: "非常想！愿意花3小时搭流程，之后自动运行", Value: 3},
			{Text: "尝试让AI写公式简化，但不敢完全交给机器", Value: 2},
			{Text: "搜简单工具，有'一键生成'就用", Value: 1},
			{Text: "维持现状，怕麻烦", Value: 0},
		},
	},
	{
		ID:        8,
		Dimension: 4,
		Text:      "课程涉及底层逻辑（如AI编程），你的心态？",
		Options: []Option{
			{Text: "掌控：希望学底层逻辑，自己设计工具", Value: 3},
			{Text: "好奇：好奇AI的思考逻辑", Value: 2},
			{Text: "实用：只关心 SOP 和结果", Value: 1},
			{Text: "畏难：技术原理部分会跳过", Value: 0},
		},
	},
	{
		ID:        9,
		Dimension: 5,
		Text:      "面对文件名混乱或需清洗的Excel表格？",
		Options: []Option{
			{Text: "尝试寻找'一句话搞定'的工具/方法", Value: 3},
			{Text: "找技术部/IT同事写脚本", Value: 2},
			{Text: "用 Excel 函数慢慢做", Value: 1},
			{Text: "手工一个个弄", Value: 0},
		},
	},
	{
		ID:        10,
		Dimension: 5,
		Text:      "'今天能用自然语言写出代码（Python）'，你的反应？",
		Options: []Option{
			{Text: "期待：不背语法也能写代码想试试", Value: 3},
			{Text: "怀疑：觉得太难，短课学不会", Value: 1},
			{Text: "无感：不需要写代码", Value: 1},
			{Text: "不可能：零基础/文科生，抗拒", Value: 0},
		},
	},
}

var questionIndex = func() map[int]*Question {
	idx := make(map[int]*Question, len(Questions))
	for i := range Questions {
		idx[Questions[i].ID] = &Questions[i]
	}
	return idx
}()

// FindQuestion returns the question with the given id, or nil.
func FindQuestion(id int) *Question {
	return questionIndex[id]
}

// ResolveAnswer turns an option index of a question into an Answer carrying
// the option's value.
func ResolveAnswer(questionID, selectedOption int) (Answer, error) {
	q := FindQuestion(questionID)
	if q == nil {
		return Answer{}, ErrUnknownQuestion
	}
	if selectedOption < 0 || selectedOption >= len(q.Options) {
		return Answer{}, ErrOptionOutOfRange
	}
	return Answer{
		QuestionID:     questionID,
		SelectedOption: selectedOption,
		Value:          q.Options[selectedOption].Value,
	}, nil
}
