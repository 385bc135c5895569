package stat

import "slices"

// Requirement is a minimum value a wearer must have in one stat.
type Requirement struct {
	Kind   Kind
	Amount int
}

// IsMet reports whether s satisfies r.
//
// Postcondition: true iff s.Kind == r.Kind and s.Value >= r.Amount.
func (r Requirement) IsMet(s Stat) bool {
	return r.Kind == s.Kind && s.Value >= r.Amount
}

// RequirementBlock is an ordered list of requirements. Unlike Block it does not
// deduplicate by kind.
type RequirementBlock struct {
	requirements []Requirement
}

// NewRequirementBlock returns a RequirementBlock holding reqs in order.
func NewRequirementBlock(reqs ...Requirement) RequirementBlock {
	return RequirementBlock{requirements: slices.Clone(reqs)}
}

// Add appends r.
func (b *RequirementBlock) Add(r Requirement) {
	b.requirements = append(b.requirements, r)
}

// Get returns the first requirement of kind k and whether one was found.
func (b RequirementBlock) Get(k Kind) (Requirement, bool) {
	for _, r := range b.requirements {
		if r.Kind == k {
			return r, true
		}
	}
	return Requirement{}, false
}

// Len returns the number of requirements.
func (b RequirementBlock) Len() int {
	return len(b.requirements)
}

// Requirements returns a snapshot copy of the requirements in order.
func (b RequirementBlock) Requirements() []Requirement {
	return slices.Clone(b.requirements)
}

// Clone returns a deep copy of b.
func (b RequirementBlock) Clone() RequirementBlock {
	return RequirementBlock{requirements: slices.Clone(b.requirements)}
}

// Scale multiplies every amount by (100+percent)/100, truncating toward zero.
//
// The intermediate is single precision so results match existing item data.
//
// Postcondition: each amount is replaced by int(float32(amount) * (100+percent) / 100).
func (b *RequirementBlock) Scale(percent int) {
	for i := range b.requirements {
		r := &b.requirements[i]
		r.Amount = int(float32(r.Amount) * float32(100+percent) / 100)
	}
}
