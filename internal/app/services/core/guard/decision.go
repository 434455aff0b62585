package guard

import (
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/app/services/core/permissions"
)

type Decision int

const (
	DecisionPending Decision = iota
	DecisionAllowed
	DecisionRedirectLogin
	DecisionRedirectUnauthorized
	DecisionRedirectHome
)

func (d Decision) String() string {
	switch d {
	case DecisionAllowed:
		return "allowed"
	case DecisionRedirectLogin:
		return "redirect_login"
	case DecisionRedirectUnauthorized:
		return "redirect_unauthorized"
	case DecisionRedirectHome:
		return "redirect_home"
	default:
		return "pending"
	}
}

// RedirectTarget is the fixed path a redirect decision points at; empty for
// allowed and pending.
func (d Decision) RedirectTarget() string {
	switch d {
	case DecisionRedirectLogin:
		return PathLogin
	case DecisionRedirectUnauthorized:
		return PathUnauthorized
	case DecisionRedirectHome:
		return PathHome
	default:
		return ""
	}
}

// Evaluation is one navigation event. AuthPending is true while the
// session's authentication state is still unknown to the caller; Session nil
// means definitively unauthenticated.
type Evaluation struct {
	Path        string
	AuthPending bool
	Session     *models.Session
	Resolver    *permissions.Resolver
}

// Evaluate is the navigation decision function. It is pure and idempotent:
// the same inputs always produce the same decision, and a pending result
// simply means "evaluate again once the missing state arrives". There is no
// grace timer; the resolver snapshot either answers or is still loading.
//
// Decision order:
//  1. public exact matches are allowed in every session state
//  2. nothing else is decided while authentication is pending
//  3. the login path bounces authenticated sessions home
//  4. protected prefixes (first match wins) require authentication
//  5. a required capability is checked fail-closed against the resolver
func Evaluate(eval Evaluation) Decision {
	if _, ok := publicPaths[eval.Path]; ok {
		return DecisionAllowed
	}

	if eval.AuthPending {
		return DecisionPending
	}

	authenticated := eval.Session.IsAuthenticated()

	if eval.Path == PathLogin {
		if authenticated {
			return DecisionRedirectHome
		}
		return DecisionAllowed
	}

	route, protected := matchRoute(eval.Path)
	if !protected {
		return DecisionAllowed
	}

	if !authenticated {
		return DecisionRedirectLogin
	}

	if route.RequiredCapability == "" {
		return DecisionAllowed
	}

	if !eval.Resolver.Ready() {
		return DecisionPending
	}

	if !eval.Resolver.HasPermission(route.RequiredCapability) {
		return DecisionRedirectUnauthorized
	}

	return DecisionAllowed
}
