package model

import (
	"time"

	"gorm.io/datatypes"
)

// University campuses applicants can belong to
const (
	UniversityDeemed = "Graphic Era Deemed to be University"
	UniversityHill   = "Graphic Era Hill University"
)

// ActiveBacklogs values
const (
	BacklogsNone      = "none"
	BacklogsOne       = "1 backlog"
	BacklogsTwoOrMore = "2 or more backlogs"
)

// PlanAfterGraduation values
const (
	PlanJob              = "Job/Placement"
	PlanFurtherStudies   = "Further studies"
	PlanEntrepreneurship = "Entrepreneurship/New Venture or Startup"
	PlanOther            = "Other"
)

// Application is one submitted internship application. Rows are written
// exactly once and never updated or deleted by the API.
type Application struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Email            string `gorm:"type:varchar(255);not null" json:"email"`
	FullName         string `gorm:"type:varchar(255);not null" json:"full_name"`
	University       string `gorm:"type:university_name;not null" json:"university"`
	EnrollmentNumber string `gorm:"type:varchar(100);not null" json:"enrollment_number"`
	ContactNumber    string `gorm:"type:varchar(50);not null" json:"contact_number"`

	// Serialized client-side structures; malformed input is stored as the
	// empty list/object, never rejected.
	AppleDevices      datatypes.JSON `json:"apple_devices"`
	CGPA              float64        `gorm:"type:decimal(4,2);not null" json:"cgpa"`
	ActiveBacklogs    *string        `gorm:"type:active_backlogs" json:"active_backlogs"`
	ProgrammingSkills datatypes.JSON `json:"programming_skills"`

	OtherLanguages string `gorm:"type:text" json:"other_languages"`
	LeetcodeRank   string `gorm:"type:varchar(100)" json:"leetcode_rank"`
	LeetcodeLink   string `gorm:"type:varchar(255)" json:"leetcode_link"`
	HackerrankRank string `gorm:"type:varchar(100)" json:"hackerrank_rank"`
	HackerrankLink string `gorm:"type:varchar(255)" json:"hackerrank_link"`
	GithubLink     string `gorm:"type:varchar(255)" json:"github_link"`

	// Flag + free text detail pairs, flag derived from a "yes"/other answer
	HackathonsParticipated   bool   `json:"hackathons_participated"`
	HackathonDetails         string `gorm:"type:text" json:"hackathon_details"`
	ProjectsDone             bool   `json:"projects_done"`
	ProjectDetails           string `gorm:"type:text" json:"project_details"`
	EntrepreneurshipPrograms bool   `json:"entrepreneurship_programs"`
	EntrepreneurshipDetails  string `gorm:"type:text" json:"entrepreneurship_details"`
	OtherSkillBuilding       bool   `json:"other_skill_building"`
	OtherSkillDetails        string `gorm:"type:text" json:"other_skill_details"`

	SpecialSkills       string  `gorm:"type:text" json:"special_skills"`
	Awards              string  `gorm:"type:text" json:"awards"`
	PlanAfterGraduation *string `gorm:"type:graduation_plan" json:"plan_after_graduation"`
	PlanOther           string  `gorm:"type:text" json:"plan_other"`
	Motivation          string  `gorm:"type:text" json:"motivation"`

	// Relative public URL of the stored resume, nil when none was attached
	ResumePath *string `gorm:"type:varchar(512)" json:"resume_path"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Application) TableName() string {
	return "applications"
}
