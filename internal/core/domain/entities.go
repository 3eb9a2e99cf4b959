package domain

// Role represents a user role in the system
type Role string

const (
	RolePrincipal      Role = "Principal"
	RoleMasterInCharge Role = "Master In-Charge"
	RoleCoach          Role = "Coach"
	RoleAdmin          Role = "Admin"
	RoleParent         Role = "Parent"
)

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RolePrincipal, RoleMasterInCharge, RoleCoach, RoleAdmin, RoleParent:
		return true
	}
	return false
}

// TeamCategory represents the kind of team
type TeamCategory string

const (
	CategorySports   TeamCategory = "Sports"
	CategoryActivity TeamCategory = "Activity"
)

// PlayerStatus represents a player's availability status
type PlayerStatus string

const (
	PlayerActive   PlayerStatus = "Active"
	PlayerInjured  PlayerStatus = "Injured"
	PlayerInactive PlayerStatus = "Inactive"
)

// AttendanceStatus represents a single day's attendance mark
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLate    AttendanceStatus = "Late"
	AttendanceExcused AttendanceStatus = "Excused"
)

// IsValid reports whether the status is a known attendance status
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

// EventType represents the kind of schedule event
type EventType string

const (
	EventPractice EventType = "Practice"
	EventMatch    EventType = "Match"
	EventMeeting  EventType = "Meeting"
)

// CoachRole is the role of a coach within a team
type CoachRole string

const (
	HeadCoach      CoachRole = "Head Coach"
	AssistantCoach CoachRole = "Assistant Coach"
)

// MaxCoachesPerTeam is the maximum number of coaches a team may carry
const MaxCoachesPerTeam = 3

// User represents a user account
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PasswordHash   string `json:"passwordHash"`
	Role           Role   `json:"role"`
	AssignedTeamID string `json:"assignedTeamId,omitempty"` // Coaches only
	LinkedPlayerID string `json:"linkedPlayerId,omitempty"` // Parents only
	AvatarURL      string `json:"avatarUrl,omitempty"`
}

// PublicUser is the user shape returned to clients (never the hash)
type PublicUser struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           Role   `json:"role"`
	AssignedTeamID string `json:"assignedTeamId,omitempty"`
	LinkedPlayerID string `json:"linkedPlayerId,omitempty"`
	AvatarURL      string `json:"avatarUrl,omitempty"`
}

// Public strips credential fields from a user
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		AssignedTeamID: u.AssignedTeamID,
		LinkedPlayerID: u.LinkedPlayerID,
		AvatarURL:      u.AvatarURL,
	}
}

// CoachInfo describes one coach attached to a team
type CoachInfo struct {
	Name       string    `json:"name"`
	Role       CoachRole `json:"role"`
	JoinedDate string    `json:"joinedDate"`
}

// Team represents a sports team or activity group
type Team struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category TeamCategory `json:"category"`
	Coaches  []CoachInfo  `json:"coaches"`
	Icon     string       `json:"icon"`
	LogoURL  string       `json:"logoUrl,omitempty"`
}

// Player represents a team member
type Player struct {
	ID                    string `json:"id"`
	TeamID                string `json:"teamId"`
	Name                  string `json:"name"`
	Grade                 string `json:"grade"`
	Position              string `json:"position"`
	ContactParent         string `json:"contactParent"`
	PhotoURL              string `json:"photoUrl,omitempty"`
	DOB                   string `json:"dob"`
	JoinedDate            string `json:"joinedDate"`
	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`
	PerformanceNotes      string `json:"performanceNotes,omitempty"`
	MedicalNotes          string `json:"medicalNotes,omitempty"`
	// AttendanceRate is a stored figure, not derived from attendance
	// records. Recomputing it would change observable behavior.
	AttendanceRate int          `json:"attendanceRate"`
	Status         PlayerStatus `json:"status"`
}

// AttendanceRecord is one player's mark for one calendar date.
// At most one record exists per (PlayerID, Date) pair.
type AttendanceRecord struct {
	ID       string           `json:"id"`
	PlayerID string           `json:"playerId"`
	TeamID   string           `json:"teamId"`
	Date     string           `json:"date"` // ISO date, no time component
	Status   AttendanceStatus `json:"status"`
}

// ScheduleEvent is an append-only calendar entry for a team
type ScheduleEvent struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"teamId"`
	Title     string    `json:"title"`
	Date      string    `json:"date"` // ISO date
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Location  string    `json:"location"`
	Type      EventType `json:"type"`
}

// AppSettings is the app-wide singleton configuration
type AppSettings struct {
	SchoolName string `json:"schoolName"`
	LogoURL    string `json:"logoUrl"`
}

// DashboardStats holds the headline counters for the school-wide dashboard
type DashboardStats struct {
	TotalPlayers    int `json:"totalPlayers"`
	ActiveTeams     int `json:"activeTeams"`
	AttendanceToday int `json:"attendanceToday"`
	UpcomingEvents  int `json:"upcomingEvents"`
}
