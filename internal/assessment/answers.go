package assessment

// AnswerSheet maps flat question ids to the candidate's selected
// option. It grows as the candidate answers and may be sparse;
// unanswered ids are simply absent.
type AnswerSheet struct {
	selected map[string]string
}

// NewAnswerSheet creates an empty answer sheet.
func NewAnswerSheet() *AnswerSheet {
	return &AnswerSheet{selected: make(map[string]string)}
}

// Record stores the selection for a question id, overwriting any prior
// selection for the same id.
func (a *AnswerSheet) Record(id, option string) {
	a.selected[id] = option
}

// Get returns the recorded selection and whether one exists.
func (a *AnswerSheet) Get(id string) (string, bool) {
	opt, ok := a.selected[id]
	return opt, ok
}

// Answered returns the number of distinct questions answered.
func (a *AnswerSheet) Answered() int {
	return len(a.selected)
}
