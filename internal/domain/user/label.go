package user

// Label is the traveller persona picked at registration.
type Label string

const (
	LabelBusiness Label = "business"
	LabelFamily   Label = "family"
	LabelStudent  Label = "student"
)

const DefaultLabel = LabelBusiness

func (l Label) String() string {
	return string(l)
}

func (l Label) IsValid() bool {
	switch l {
	case LabelBusiness, LabelFamily, LabelStudent:
		return true
	default:
		return false
	}
}

// NewLabel treats an empty value as the default label.
func NewLabel(s string) (Label, error) {
	if s == "" {
		return DefaultLabel, nil
	}
	label := Label(s)
	if !label.IsValid() {
		return "", ErrInvalidLabel
	}
	return label, nil
}
