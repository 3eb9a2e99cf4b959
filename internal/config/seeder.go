package config

import (
	"fmt"
	"log"
	"time"

	"amps-backend/internal/core/domain"
	"amps-backend/internal/pkg/password"
)

// SeedData is the fixed fallback dataset used when a collection has never
// been persisted (or its stored value is corrupt).
type SeedData struct {
	Users      []domain.User
	Teams      []domain.Team
	Players    []domain.Player
	Schedule   []domain.ScheduleEvent
	Attendance []domain.AttendanceRecord
	Settings   domain.AppSettings
}

// BuildSeedData builds the deterministic seed dataset. Seed passwords are
// hashed at the given bcrypt cost; tests pass password.MinCost to keep
// seeding fast.
func BuildSeedData(bcryptCost int) (*SeedData, error) {
	log.Println("🌱 Building seed dataset...")

	teams := seedTeams()
	players := seedPlayers(teams)

	users, err := seedUsers(teams, players, bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to seed users: %w", err)
	}

	return &SeedData{
		Users:      users,
		Teams:      teams,
		Players:    players,
		Schedule:   seedSchedule(),
		Attendance: seedAttendance(players),
		Settings: domain.AppSettings{
			SchoolName: "Greenwood College",
			LogoURL:    "",
		},
	}, nil
}

func seedTeams() []domain.Team {
	return []domain.Team{
		{ID: "t1", Name: "Rugby", Category: domain.CategorySports, Icon: "🏉",
			Coaches: []domain.CoachInfo{{Name: "Mr. Silva", Role: domain.HeadCoach, JoinedDate: "2020-01-15"}}},
		{ID: "t2", Name: "Cricket", Category: domain.CategorySports, Icon: "🏏",
			Coaches: []domain.CoachInfo{
				{Name: "Mr. Perera", Role: domain.HeadCoach, JoinedDate: "2019-05-20"},
				{Name: "Mr. Dilshan", Role: domain.AssistantCoach, JoinedDate: "2021-02-10"},
			}},
		{ID: "t3", Name: "Football", Category: domain.CategorySports, Icon: "⚽",
			Coaches: []domain.CoachInfo{{Name: "Mr. Fernando", Role: domain.HeadCoach, JoinedDate: "2021-03-10"}}},
		{ID: "t4", Name: "Kung Fu", Category: domain.CategorySports, Icon: "🥋",
			Coaches: []domain.CoachInfo{{Name: "Master Lee", Role: domain.HeadCoach, JoinedDate: "2018-11-01"}}},
		{ID: "t5", Name: "Badminton", Category: domain.CategorySports, Icon: "🏸",
			Coaches: []domain.CoachInfo{{Name: "Ms. Jayasinghe", Role: domain.HeadCoach, JoinedDate: "2022-02-14"}}},
		{ID: "t6", Name: "Swimming", Category: domain.CategorySports, Icon: "🏊",
			Coaches: []domain.CoachInfo{{Name: "Mr. Dias", Role: domain.HeadCoach, JoinedDate: "2020-08-30"}}},
		{ID: "t7", Name: "Chess", Category: domain.CategoryActivity, Icon: "♟️",
			Coaches: []domain.CoachInfo{{Name: "Mr. Karunaratne", Role: domain.HeadCoach, JoinedDate: "2015-06-01"}}},
		{ID: "t8", Name: "Band", Category: domain.CategoryActivity, Icon: "🎺",
			Coaches: []domain.CoachInfo{{Name: "Mr. Mendis", Role: domain.HeadCoach, JoinedDate: "2017-09-15"}}},
		{ID: "t9", Name: "Scouts", Category: domain.CategoryActivity, Icon: "⚜️",
			Coaches: []domain.CoachInfo{{Name: "Mr. Alwis", Role: domain.HeadCoach, JoinedDate: "2016-04-22"}}},
	}
}

// seedPlayers generates 12 players per team with deterministic field values
func seedPlayers(teams []domain.Team) []domain.Player {
	players := make([]domain.Player, 0, len(teams)*12)

	for ti, team := range teams {
		for i := 1; i <= 12; i++ {
			position := "Member"
			notes := ""
			if i == 1 {
				position = "Captain"
				notes = "Excellent leadership skills. Consistently improves."
			}
			status := domain.PlayerActive
			if i == 10 {
				status = domain.PlayerInjured
			}

			players = append(players, domain.Player{
				ID:                    fmt.Sprintf("p-%s-%d", team.ID, i),
				TeamID:                team.ID,
				Name:                  fmt.Sprintf("Student %s-%d", team.ID, i),
				Grade:                 fmt.Sprintf("%d", 10+(i%3)),
				Position:              position,
				ContactParent:         fmt.Sprintf("077-%07d", 1000000+ti*100000+i*137),
				DOB:                   "2008-05-15",
				JoinedDate:            "2023-01-10",
				EmergencyContactName:  "Parent Name",
				EmergencyContactPhone: fmt.Sprintf("071-%07d", 1000000+ti*100000+i*211),
				PerformanceNotes:      notes,
				AttendanceRate:        70 + (ti*7+i*3)%31,
				Status:                status,
			})
		}
	}
	return players
}

func seedUsers(teams []domain.Team, players []domain.Player, bcryptCost int) ([]domain.User, error) {
	hash := func(plain string) (string, error) {
		return password.HashWithCost(plain, bcryptCost)
	}

	stdPwd, err := hash("123")
	if err != nil {
		return nil, err
	}
	adminPwd, err := hash("Rugby@al")
	if err != nil {
		return nil, err
	}

	users := []domain.User{
		{ID: "u1", Name: "Principal Mrs. Wickramasinghe", Email: "principal@school.com",
			PasswordHash: stdPwd, Role: domain.RolePrincipal},
		{ID: "u2", Name: "Master In-Charge Mr. Gamage", Email: "mic@school.com",
			PasswordHash: stdPwd, Role: domain.RoleMasterInCharge},
		{ID: "u6", Name: "System Admin", Email: "admin@school.com",
			PasswordHash: adminPwd, Role: domain.RoleAdmin},
		{ID: "u7", Name: "Parent User", Email: "parent@school.com",
			PasswordHash: stdPwd, Role: domain.RoleParent, LinkedPlayerID: players[0].ID},
	}

	// One coach account per team; seed password is the team name
	for _, team := range teams {
		headCoach := "Coach"
		for _, c := range team.Coaches {
			if c.Role == domain.HeadCoach {
				headCoach = c.Name
				break
			}
		}
		coachPwd, err := hash(team.Name)
		if err != nil {
			return nil, err
		}
		users = append(users, domain.User{
			ID:             "u-coach-" + team.ID,
			Name:           fmt.Sprintf("%s (%s)", headCoach, team.Name),
			Email:          emailForTeam(team.Name),
			PasswordHash:   coachPwd,
			Role:           domain.RoleCoach,
			AssignedTeamID: team.ID,
		})
	}

	return users, nil
}

// emailForTeam builds the coach login address from the team name
func emailForTeam(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if r == ' ' {
			continue
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out) + "@school.com"
}

func seedSchedule() []domain.ScheduleEvent {
	day := func(offset int) string {
		return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
	}
	return []domain.ScheduleEvent{
		{ID: "e1", TeamID: "t1", Title: "Morning Practice", Date: day(0),
			StartTime: "06:00", EndTime: "08:00", Location: "School Ground", Type: domain.EventPractice},
		{ID: "e2", TeamID: "t2", Title: "Net Practice", Date: day(1),
			StartTime: "15:00", EndTime: "17:30", Location: "Main Pitch", Type: domain.EventPractice},
		{ID: "e3", TeamID: "t3", Title: "Friendly Match", Date: day(2),
			StartTime: "16:00", EndTime: "18:00", Location: "City Stadium", Type: domain.EventMatch},
	}
}

func seedAttendance(players []domain.Player) []domain.AttendanceRecord {
	day := func(offset int) string {
		return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
	}
	first := players[0]
	return []domain.AttendanceRecord{
		{ID: "a1", PlayerID: first.ID, TeamID: first.TeamID, Date: day(-2), Status: domain.AttendancePresent},
		{ID: "a2", PlayerID: first.ID, TeamID: first.TeamID, Date: day(-5), Status: domain.AttendancePresent},
		{ID: "a3", PlayerID: first.ID, TeamID: first.TeamID, Date: day(-7), Status: domain.AttendanceAbsent},
	}
}
