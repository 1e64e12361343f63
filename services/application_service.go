package services

import (
	"encoding/json"
	"strconv"
	"strings"

	"gorm.io/datatypes"

	"github.com/gecampus/apply-api/database"
	"github.com/gecampus/apply-api/model"
	"github.com/gecampus/apply-api/utils/validation"
)

// ApplicationRequest is the flat multipart field set clients submit. Field
// order matters: missing required fields are reported in this order.
type ApplicationRequest struct {
	Email               string `form:"email" validate:"notblank"`
	FullName            string `form:"fullName" validate:"notblank"`
	University          string `form:"university" validate:"notblank"`
	EnrollmentNumber    string `form:"enrollmentNumber" validate:"notblank"`
	ContactNumber       string `form:"contactNumber" validate:"notblank"`
	CGPA                string `form:"cgpa" validate:"notblank"`
	PlanAfterGraduation string `form:"planAfterGraduation" validate:"notblank"`
	Motivation          string `form:"motivation" validate:"notblank"`

	// Serialized structures; malformed input falls back to an empty default
	AppleDevices      string `form:"appleDevices"`
	ProgrammingSkills string `form:"programmingSkills"`

	ActiveBacklogs string `form:"activeBacklogs"`
	OtherLanguages string `form:"otherLanguages"`
	LeetcodeRank   string `form:"leetcodeRank"`
	LeetcodeLink   string `form:"leetcodeLink"`
	HackerrankRank string `form:"hackerrankRank"`
	HackerrankLink string `form:"hackerrankLink"`
	GithubLink     string `form:"githubLink"`

	// "yes"/anything-else answers paired with optional detail text
	HackathonsParticipated   string `form:"hackathonsParticipated"`
	HackathonDetails         string `form:"hackathonDetails"`
	ProjectsDone             string `form:"projectsDone"`
	ProjectDetails           string `form:"projectDetails"`
	EntrepreneurshipPrograms string `form:"entrepreneurshipPrograms"`
	EntrepreneurshipDetails  string `form:"entrepreneurshipDetails"`
	OtherSkillBuilding       string `form:"otherSkillBuilding"`
	OtherSkillDetails        string `form:"otherSkillDetails"`

	SpecialSkills string `form:"specialSkills"`
	Awards        string `form:"awards"`
	PlanOther     string `form:"planOther"`
}

// ValidationError is a client-caused rejection; handlers map it to a 400
// while every other failure becomes a generic 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ApplicationService turns raw submissions into canonical records and
// persists them.
type ApplicationService struct {
	store     database.Storage
	validator *validation.Validator
}

// NewApplicationService creates a new application service
func NewApplicationService(store database.Storage) *ApplicationService {
	return &ApplicationService{
		store:     store,
		validator: validation.NewValidator(),
	}
}

// Submit runs the validation pipeline and inserts the canonical record. All
// validation happens before the insert; once the insert is attempted the
// only remaining failure mode is a store error.
func (s *ApplicationService) Submit(req *ApplicationRequest, resume *StoredFile) (*model.Application, error) {
	record, err := s.BuildRecord(req, resume)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateApplication(record); err != nil {
		return nil, err
	}

	return record, nil
}

// BuildRecord validates and normalizes one submission into a canonical
// record ready for insertion. It never writes anything.
func (s *ApplicationService) BuildRecord(req *ApplicationRequest, resume *StoredFile) (*model.Application, error) {
	appleDevices := parseJSONList(req.AppleDevices)
	programmingSkills := parseJSONMap(req.ProgrammingSkills)

	if err := s.validator.ValidateStruct(req); err != nil {
		missing := validation.MissingFields(err)
		if len(missing) > 0 {
			return nil, &ValidationError{Message: "Missing required fields: " + strings.Join(missing, ", ")}
		}
		return nil, err
	}

	cgpa, err := strconv.ParseFloat(strings.TrimSpace(req.CGPA), 64)
	if err != nil {
		return nil, &ValidationError{Message: "CGPA must be a number"}
	}

	// The upload layer already enforced the ceiling; re-check here so the
	// pipeline holds on its own
	if resume != nil && resume.Size > MaxResumeSize {
		return nil, &ValidationError{Message: "Resume file exceeds 10MB limit"}
	}

	record := &model.Application{
		Email:             req.Email,
		FullName:          req.FullName,
		University:        req.University,
		EnrollmentNumber:  req.EnrollmentNumber,
		ContactNumber:     req.ContactNumber,
		AppleDevices:      appleDevices,
		CGPA:              cgpa,
		ActiveBacklogs:    optionalEnum(req.ActiveBacklogs),
		ProgrammingSkills: programmingSkills,
		OtherLanguages:    req.OtherLanguages,
		LeetcodeRank:      req.LeetcodeRank,
		LeetcodeLink:      req.LeetcodeLink,
		HackerrankRank:    req.HackerrankRank,
		HackerrankLink:    req.HackerrankLink,
		GithubLink:        req.GithubLink,

		HackathonsParticipated:   isYes(req.HackathonsParticipated),
		HackathonDetails:         req.HackathonDetails,
		ProjectsDone:             isYes(req.ProjectsDone),
		ProjectDetails:           req.ProjectDetails,
		EntrepreneurshipPrograms: isYes(req.EntrepreneurshipPrograms),
		EntrepreneurshipDetails:  req.EntrepreneurshipDetails,
		OtherSkillBuilding:       isYes(req.OtherSkillBuilding),
		OtherSkillDetails:        req.OtherSkillDetails,

		SpecialSkills:       req.SpecialSkills,
		Awards:              req.Awards,
		PlanAfterGraduation: optionalEnum(req.PlanAfterGraduation),
		PlanOther:           req.PlanOther,
		Motivation:          req.Motivation,
	}

	if resume != nil {
		path := resume.PublicPath
		record.ResumePath = &path
	}

	return record, nil
}

// isYes derives a flag from a free-form answer; only a case-insensitive
// "yes" counts
func isYes(value string) bool {
	return strings.EqualFold(value, "yes")
}

// optionalEnum maps an absent value to NULL instead of the empty string,
// which the enum columns would reject
func optionalEnum(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// parseJSONList parses a serialized list; anything that does not decode as
// one is replaced by the empty list rather than failing the submission
func parseJSONList(raw string) datatypes.JSON {
	var list []interface{}
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		return datatypes.JSON("[]")
	}
	out, err := json.Marshal(list)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(out)
}

// parseJSONMap is parseJSONList for mappings
func parseJSONMap(raw string) datatypes.JSON {
	var mapping map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &mapping); err != nil || mapping == nil {
		return datatypes.JSON("{}")
	}
	out, err := json.Marshal(mapping)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(out)
}
