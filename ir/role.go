package ir

// Role is a semantic UI tag drawn from a closed vocabulary. There are no
// extension points: a string outside the set below is a validation error,
// never a silently-accepted UNKNOWN.
type Role string

const (
	RolePage    Role = "PAGE"
	RoleNav     Role = "NAV"
	RoleHeader  Role = "HEADER"
	RoleFooter  Role = "FOOTER"
	RoleSection Role = "SECTION"
	RoleCard    Role = "CARD"
	RoleList    Role = "LIST"
	RoleTable   Role = "TABLE"

	RoleModal    Role = "MODAL"
	RoleToast    Role = "TOAST"
	RoleDropdown Role = "DROPDOWN"

	RoleForm     Role = "FORM"
	RoleInput    Role = "INPUT"
	RoleButton   Role = "BUTTON"
	RoleLink     Role = "LINK"
	RoleCheckbox Role = "CHECKBOX"
	RoleRadio    Role = "RADIO"
	RoleIcon     Role = "ICON"

	RoleImage Role = "IMAGE"
	RoleText  Role = "TEXT"

	RolePagination Role = "PAGINATION"
	RoleUnknown    Role = "UNKNOWN"
)

// validRoles is the closed membership set consulted by the validator.
var validRoles = map[Role]bool{
	RolePage: true, RoleNav: true, RoleHeader: true, RoleFooter: true,
	RoleSection: true, RoleCard: true, RoleList: true, RoleTable: true,
	RoleModal: true, RoleToast: true, RoleDropdown: true,
	RoleForm: true, RoleInput: true, RoleButton: true, RoleLink: true,
	RoleCheckbox: true, RoleRadio: true, RoleIcon: true,
	RoleImage: true, RoleText: true,
	RolePagination: true, RoleUnknown: true,
}

// IsValidRole reports whether s names a role in the closed vocabulary.
// It takes a plain string (not Role) because the usual caller holds an
// unvalidated value straight out of JSON decoding.
func IsValidRole(s string) bool {
	return validRoles[Role(s)]
}

// containerRoles are the roles the ASCII renderer treats as box-drawing
// containers rather than inline leaves.
var containerRoles = map[Role]bool{
	RolePage: true, RoleNav: true, RoleHeader: true, RoleFooter: true,
	RoleSection: true, RoleCard: true, RoleList: true, RoleTable: true,
	RoleModal: true, RoleToast: true, RoleDropdown: true, RoleForm: true,
}

// IsContainerRole reports whether a role is drawn as a bordered box.
func (r Role) IsContainerRole() bool {
	return containerRoles[r]
}

// renderPriority controls which role wins when two boxes overlap on the
// render grid; higher floats over lower. Overlays float over everything.
var renderPriority = map[Role]int{
	RoleToast:    100,
	RoleModal:    90,
	RoleDropdown: 80,

	RoleForm: 50, RoleCard: 50, RoleTable: 50, RoleList: 50,
	RoleNav: 40, RoleHeader: 40, RoleFooter: 40,
	RoleSection: 20, RolePage: 0,
}

// RenderPriority returns the layer priority used by the ASCII renderer.
// Roles absent from the table (interactive leaves, text, images, unknown)
// default to a mid priority so they still draw over plain containers.
func (r Role) RenderPriority() int {
	if p, ok := renderPriority[r]; ok {
		return p
	}
	return 30
}
