package jobpost

import (
	"jobportal-backend/internal/model"

	"github.com/google/uuid"
)

// ViewerKind is the closed set of callers the service distinguishes
type ViewerKind int

const (
	Anonymous ViewerKind = iota
	Recruiter
	JobSeeker
	Admin
)

func (k ViewerKind) String() string {
	switch k {
	case Recruiter:
		return model.RoleRecruiter
	case JobSeeker:
		return model.RoleJobSeeker
	case Admin:
		return model.RoleAdmin
	default:
		return "anonymous"
	}
}

// Viewer is the identity a request runs as. It is passed explicitly into every Service call.
type Viewer struct {
	Kind   ViewerKind
	UserID uuid.UUID
}

// AnonymousViewer is the viewer of requests without a valid token
var AnonymousViewer = Viewer{Kind: Anonymous}

// ViewerFromUser maps an authenticated user to its viewer. A nil user is anonymous.
func ViewerFromUser(user *model.User) Viewer {
	if user == nil {
		return AnonymousViewer
	}
	switch user.Role {
	case model.RoleRecruiter:
		return Viewer{Kind: Recruiter, UserID: user.ID}
	case model.RoleJobSeeker:
		return Viewer{Kind: JobSeeker, UserID: user.ID}
	case model.RoleAdmin:
		return Viewer{Kind: Admin, UserID: user.ID}
	default:
		return AnonymousViewer
	}
}

// Authenticated reports whether the viewer is signed in
func (v Viewer) Authenticated() bool {
	return v.Kind != Anonymous
}
