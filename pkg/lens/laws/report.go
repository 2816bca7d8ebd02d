package laws

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/lens3/pkg/lens"
)

type Law int

const (
	LawGetSet Law = iota
	LawSetGet
	LawSetSet
	LawSetTwice
)

func (l Law) String() string {
	switch l {
	case LawGetSet:
		return "GetSet"
	case LawSetGet:
		return "SetGet"
	case LawSetSet:
		return "SetSet"
	case LawSetTwice:
		return "SetTwice"
	default:
		return fmt.Sprintf("Law(%d)", int(l))
	}
}

func (l Law) sentinel() error {
	switch l {
	case LawGetSet:
		return ErrGetSet
	case LawSetGet:
		return ErrSetGet
	case LawSetSet:
		return ErrSetSet
	default:
		return ErrSetTwice
	}
}

// Violation is one failed check. Sample is the index of the part that failed,
// or -1 for GetSet, which does not take a part.
type Violation struct {
	Law    Law
	Sample int
}

func (v Violation) Err() error {
	if v.Sample < 0 {
		return v.Law.sentinel()
	}
	return fmt.Errorf("%w: sample %d", v.Law.sentinel(), v.Sample)
}

// Report is the outcome of Verify.
type Report struct {
	id         uuid.UUID
	createdAt  time.Time
	checks     int
	violations []Violation
}

// Verify runs the single lens laws for l at w: GetSet once, then SetGet and
// SetTwice for every part, and SetSet for every part followed by the next one
// (wrapping around).
func Verify[W, P comparable](l lens.Lens[W, P], w W, parts ...P) Report {
	r := Report{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}

	r.check(GetSet(l, w), LawGetSet, -1)
	for i, p := range parts {
		next := parts[(i+1)%len(parts)]

		r.check(SetGet(l, w, p), LawSetGet, i)
		r.check(SetTwice(l, w, p), LawSetTwice, i)
		r.check(SetSet(l, w, p, next), LawSetSet, i)
	}

	return r
}

func (r *Report) check(holds bool, law Law, sample int) {
	r.checks++
	if !holds {
		r.violations = append(r.violations, Violation{Law: law, Sample: sample})
	}
}

func (r Report) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Report) CreatedAt() time.Time {
	return r.createdAt
}

func (r Report) Checks() int {
	return r.checks
}

func (r Report) Violations() []Violation {
	out := make([]Violation, len(r.violations))
	copy(out, r.violations)
	return out
}

// Holds returns true if every check passed.
func (r Report) Holds() bool {
	return len(r.violations) == 0
}

// Err joins every violation; nil when the report holds.
func (r Report) Err() error {
	if r.Holds() {
		return nil
	}

	errs := make([]error, 0, len(r.violations))
	for _, v := range r.violations {
		errs = append(errs, v.Err())
	}
	return errors.Join(errs...)
}

// Violated returns true if law failed at least once.
func (r Report) Violated(law Law) bool {
	for _, v := range r.violations {
		if v.Law == law {
			return true
		}
	}
	return false
}
