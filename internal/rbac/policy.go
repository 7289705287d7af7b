package rbac

const (
	RoleAdmin       = "ADMIN"
	RoleChefService = "CHEF_SERVICE"
	RoleEmployee    = "EMPLOYEE"
)

// IsPrivileged melaporkan apakah role bebas dari batasan ownership
// pada operasi read/list/mutate.
func IsPrivileged(role string) bool {
	return role == RoleAdmin || role == RoleChefService
}

// Rule adalah satu baris tabel kapabilitas: role boleh melakukan
// action terhadap resource.
type Rule struct {
	Role     string
	Resource string
	Action   string
}

// RoleInheritance: role kiri mewarisi seluruh kapabilitas role kanan.
type RoleInheritance struct {
	Child  string
	Parent string
}

// DefaultPolicies adalah satu-satunya sumber kebenaran untuk route → role.
// Check ownership per-record (punya siapa baris ini) tetap di service layer;
// tabel ini hanya menjawab "boleh tidak role X memakai operasi ini sama sekali".
func DefaultPolicies() []Rule {
	return []Rule{
		// EMPLOYEE adalah kapabilitas dasar semua role
		{RoleEmployee, "user", "read"},
		{RoleEmployee, "user", "update"},
		{RoleEmployee, "user", "delete"},
		{RoleEmployee, "child", "read"},
		{RoleEmployee, "child", "write"},
		{RoleEmployee, "leave-balance", "read"},
		{RoleEmployee, "leave-request", "read"},
		{RoleEmployee, "leave-request", "create"},
		{RoleEmployee, "leave-request", "update"},
		{RoleEmployee, "leave-request", "delete"},
		{RoleEmployee, "schedule", "read"},
		{RoleEmployee, "task", "read"},
		{RoleEmployee, "task", "update"},
		{RoleEmployee, "task", "toggle"},
		{RoleEmployee, "task", "delete"},

		// Supervisor: schedule/task management; persetujuan leave request
		// lewat endpoint update, dicek per-record di service layer
		{RoleChefService, "schedule", "manage"},
		{RoleChefService, "task", "create"},

		// Admin: semua di atas plus master data & ledger
		{RoleAdmin, "user", "list"},
		{RoleAdmin, "leave-type", "write"},
		{RoleAdmin, "leave-balance", "manage"},
		{RoleAdmin, "schedule", "manage"},
		{RoleAdmin, "task", "create"},
	}
}

func DefaultRoleInheritance() []RoleInheritance {
	return []RoleInheritance{
		{RoleAdmin, RoleEmployee},
		{RoleChefService, RoleEmployee},
	}
}
