package vim

// Register names.
const (
	// RegisterUnnamed is the default register (") read by paste.
	RegisterUnnamed = '"'

	// RegisterLastYank is the yank register (0).
	RegisterLastYank = '0'

	// RegisterSmallDelete holds deletes within a single line (-).
	RegisterSmallDelete = '-'
)

// numbered delete registers 1 through 9
const numbered = 9

// Register holds yanked or deleted text.
type Register struct {
	// Content holds the register's text content.
	Content string

	// Linewise indicates the content is whole lines and pastes below the
	// cursor line rather than after the cursor.
	Linewise bool
}

// IsEmpty reports whether the register holds no text.
func (r Register) IsEmpty() bool {
	return r.Content == ""
}

// RegisterStore manages the unnamed, yank, small delete and numbered
// delete registers.
type RegisterStore struct {
	unnamed     Register
	lastYank    Register
	smallDelete Register
	deletes     [numbered]Register
}

// NewRegisterStore creates an empty register store.
func NewRegisterStore() *RegisterStore {
	return &RegisterStore{}
}

// Get returns the content of a register by name.
func (rs *RegisterStore) Get(name rune) (Register, bool) {
	switch {
	case name == RegisterUnnamed:
		return rs.unnamed, true
	case name == RegisterLastYank:
		return rs.lastYank, true
	case name == RegisterSmallDelete:
		return rs.smallDelete, true
	case name >= '1' && name <= '9':
		return rs.deletes[name-'1'], true
	default:
		return Register{}, false
	}
}

// Unnamed returns the register paste reads from.
func (rs *RegisterStore) Unnamed() Register {
	return rs.unnamed
}

// SetYank stores yanked text in the yank and unnamed registers.
func (rs *RegisterStore) SetYank(content string, linewise bool) {
	r := Register{Content: content, Linewise: linewise}
	rs.lastYank = r
	rs.unnamed = r
}

// SetDelete stores deleted text. Linewise or multi-line deletes rotate the
// numbered registers; others go to the small delete register.
func (rs *RegisterStore) SetDelete(content string, linewise bool) {
	r := Register{Content: content, Linewise: linewise}
	rs.unnamed = r

	if !linewise && !containsNewline(content) {
		rs.smallDelete = r
		return
	}

	// 9 <- 8 <- ... <- 1
	copy(rs.deletes[1:], rs.deletes[:numbered-1])
	rs.deletes[0] = r
}

// Clear empties every register.
func (rs *RegisterStore) Clear() {
	*rs = RegisterStore{}
}

func containsNewline(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return true
		}
	}
	return false
}
