package domain

type Role string

const (
	// Candidates register themselves and apply to published jobs.
	RoleCandidate Role = "CANDIDATE"
	// Recruiters create, list and publish jobs.
	RoleRecruiter Role = "RECRUITER"
	// Interviewers view the applicants of a job.
	RoleInterviewer Role = "INTERVIEWER"
)

func IsValidRole(r string) bool {
	return r == string(RoleCandidate) || r == string(RoleRecruiter) || r == string(RoleInterviewer)
}

// RoleAllowed reports whether role is a member of the allowed set.
// An empty set means "any authenticated identity". Roles are flat tags,
// not a hierarchy.
func RoleAllowed(role string, allowed ...Role) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if role == string(a) {
			return true
		}
	}
	return false
}
