// Package permission decides whether a principal may perform an action on a
// resource. Rules are declared per resource and evaluated in two steps: a
// collection check before anything is loaded, and an instance check once the
// target exists.
package permission

import (
	"context"
	"net/http"

	"lello/internal/model"

	"github.com/google/uuid"
)

type Action string

// Collection-level actions.
const (
	ActionCreate Action = "create"
	ActionList   Action = "list"
)

// Instance-level actions.
const (
	ActionRetrieve       Action = "retrieve"
	ActionUpdate         Action = "update"
	ActionPartialUpdate  Action = "partial_update"
	ActionDestroy        Action = "destroy"
	ActionLists          Action = "lists"
	ActionCards          Action = "cards"
	ActionAudits         Action = "audits"
	ActionCalendarEvents Action = "calendar_events"
	ActionChecklist      Action = "checklist"
	ActionGrants         Action = "grants"
	ActionMembers        Action = "members"
)

type RuleKind uint8

const (
	KindAlwaysDeny RuleKind = iota
	KindAlwaysAllow
	KindRequiresAuthentication
	KindRequiresCapability
)

// Rule is what a config maps an action to. The zero Rule denies.
type Rule struct {
	Kind       RuleKind
	Capability model.Capability
}

var (
	AlwaysAllow            = Rule{Kind: KindAlwaysAllow}
	AlwaysDeny             = Rule{Kind: KindAlwaysDeny}
	RequiresAuthentication = Rule{Kind: KindRequiresAuthentication}
)

func RequiresCapability(c model.Capability) Rule {
	return Rule{Kind: KindRequiresCapability, Capability: c}
}

// Config declares the rules of one resource type. Base holds collection-level
// actions, Instance the ones evaluated against a loaded instance. Actions
// missing from the relevant map are denied.
type Config struct {
	Name     string
	Base     map[Action]Rule
	Instance map[Action]Rule
}

type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonUnauthenticated
	ReasonForbidden
	ReasonUnavailable
)

// Decision is the outcome of an evaluation. Err is set only with
// ReasonUnavailable, when the grant store could not be queried or the request
// context was already done.
type Decision struct {
	Allowed bool
	Reason  Reason
	Err     error
}

var allowed = Decision{Allowed: true}

func deny(r Reason) Decision {
	return Decision{Reason: r}
}

// Status maps a denial to the HTTP status the boundary should answer with.
func (d Decision) Status() int {
	switch d.Reason {
	case ReasonNone:
		return http.StatusOK
	case ReasonUnauthenticated:
		return http.StatusUnauthorized
	case ReasonUnavailable:
		return http.StatusInternalServerError
	default:
		return http.StatusForbidden
	}
}

// GrantStore answers capability checks for one instance.
type GrantStore interface {
	Grant(ctx context.Context, capability model.Capability, userID, instanceID uuid.UUID) error
	Check(ctx context.Context, capability model.Capability, userID, instanceID uuid.UUID) (bool, error)
}

// Principal is the acting user; the zero value is anonymous.
type Principal struct {
	ID uuid.UUID
}

func (p Principal) Authenticated() bool {
	return p.ID != uuid.Nil
}

type Evaluator struct {
	config Config
	grants GrantStore
}

func NewEvaluator(config Config, grants GrantStore) *Evaluator {
	return &Evaluator{config: config, grants: grants}
}

func (e *Evaluator) Name() string {
	return e.config.Name
}

// Collection evaluates a collection-level action. Capability rules cannot be
// satisfied here since there is no instance to scope them to.
func (e *Evaluator) Collection(ctx context.Context, p Principal, action Action) Decision {
	rule, ok := e.config.Base[action]
	if !ok {
		return deny(ReasonForbidden)
	}
	if rule.Kind == KindRequiresCapability {
		if !p.Authenticated() {
			return deny(ReasonUnauthenticated)
		}
		return deny(ReasonForbidden)
	}
	return e.apply(ctx, rule, p, uuid.Nil)
}

// Instance evaluates an instance-level action against an instance that the
// caller has already loaded.
func (e *Evaluator) Instance(ctx context.Context, p Principal, action Action, instanceID uuid.UUID) Decision {
	rule, ok := e.config.Instance[action]
	if !ok {
		return deny(ReasonForbidden)
	}
	return e.apply(ctx, rule, p, instanceID)
}

func (e *Evaluator) apply(ctx context.Context, rule Rule, p Principal, instanceID uuid.UUID) Decision {
	if err := ctx.Err(); err != nil {
		return Decision{Reason: ReasonUnavailable, Err: err}
	}
	switch rule.Kind {
	case KindAlwaysAllow:
		return allowed
	case KindRequiresAuthentication:
		if !p.Authenticated() {
			return deny(ReasonUnauthenticated)
		}
		return allowed
	case KindRequiresCapability:
		if !p.Authenticated() {
			return deny(ReasonUnauthenticated)
		}
		ok, err := e.grants.Check(ctx, rule.Capability, p.ID, instanceID)
		if err != nil {
			return Decision{Reason: ReasonUnavailable, Err: err}
		}
		if !ok {
			return deny(ReasonForbidden)
		}
		return allowed
	default:
		return deny(ReasonForbidden)
	}
}
