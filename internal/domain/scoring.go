package domain

// PersonaKey identifies one of the four persona buckets.
type PersonaKey string

const (
	PersonaObserver        PersonaKey = "observer"
	PersonaExplorer        PersonaKey = "explorer"
	PersonaDesigner        PersonaKey = "designer"
	PersonaSuperIndividual PersonaKey = "super_individual"
)

// Upper bounds (inclusive) of the persona buckets.
const (
	observerMaxTotal = 8
	explorerMaxTotal = 16
	designerMaxTotal = 24
)

// Persona is the classification attached to a total score.
type Persona struct {
	Key         PersonaKey `json:"key"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Suggestion  string     `json:"suggestion"`
}

var personas = map[PersonaKey]Persona{
	PersonaObserver: {
		Key:         PersonaObserver,
		Title:       "AI 观望者（The Observer）",
		Description: "对AI保持观望，还没找到结合点",
		Suggestion:  "破冰就在此刻！关注第一节课'基础工具'",
	},
	PersonaExplorer: {
		Key:         PersonaExplorer,
		Title:       "效率尝鲜者（The Explorer）",
		Description: "当搜索引擎用，遇到幻觉会挫败",
		Suggestion:  "从会用到善用！重点'提示词工程（Prompt）'",
	},
	PersonaDesigner: {
		Key:         PersonaDesigner,
		Title:       "流程设计师（The Designer）",
		Description: "痛恨重复劳动，有 CTO 思维，只差兵器",
		Suggestion:  "打破能力边界！重点'AI Coding'自动化",
	},
	PersonaSuperIndividual: {
		Key:         PersonaSuperIndividual,
		Title:       "超级个体（The Super Individual）",
		Description: "走在 90% 职场人前面，懂技术杠杆",
		Suggestion:  "构建数字分身！重点'智能体（Agent）'",
	},
}

// ClassifyPersona maps a total score to its persona.
func ClassifyPersona(total int) Persona {
	switch {
	case total <= observerMaxTotal:
		return personas[PersonaObserver]
	case total <= explorerMaxTotal:
		return personas[PersonaExplorer]
	case total <= designerMaxTotal:
		return personas[PersonaDesigner]
	default:
		return personas[PersonaSuperIndividual]
	}
}

// NormalizeAnswers keeps one answer per question id. A later answer replaces an
// earlier one but keeps the earlier position in the sequence.
func NormalizeAnswers(answers []Answer) []Answer {
	out := make([]Answer, 0, len(answers))
	pos := make(map[int]int, len(answers))
	for _, a := range answers {
		if i, seen := pos[a.QuestionID]; seen {
			out[i] = a
			continue
		}
		pos[a.QuestionID] = len(out)
		out = append(out, a)
	}
	return out
}

// ComputeResult scores an answer sequence. Answers to unknown questions are
// dropped and dimensions without answers score zero; it never fails.
func ComputeResult(answers []Answer) *AssessmentResult {
	normalized := NormalizeAnswers(answers)

	var scores DimensionScores
	kept := normalized[:0]
	for _, a := range normalized {
		q := FindQuestion(a.QuestionID)
		if q == nil {
			continue
		}
		scores.add(q.Dimension, a.Value)
		kept = append(kept, a)
	}

	total := scores.Total()
	return &AssessmentResult{
		Total:      total,
		Dimensions: scores,
		Persona:    ClassifyPersona(total),
		Answers:    kept,
	}
}
