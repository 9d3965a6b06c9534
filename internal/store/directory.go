package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"hostel-management-backend/internal/model"
	"hostel-management-backend/internal/rbac"
)

var studentStatuses = map[string]bool{
	model.StudentActive: true, model.StudentVacated: true, model.StudentExpelled: true,
}

func (s *gormStore) ListOrganizations(ctx context.Context) ([]model.Organization, error) {
	orgs := []model.Organization{}
	if err := s.db.WithContext(ctx).Order("id").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

func (s *gormStore) CreateOrganization(ctx context.Context, org *model.Organization) error {
	org.Name = strings.TrimSpace(org.Name)
	org.OwnerName = strings.TrimSpace(org.OwnerName)
	org.Mobile = strings.TrimSpace(org.Mobile)
	switch {
	case org.Name == "":
		return validationError("name", "name is required")
	case org.OwnerName == "":
		return validationError("ownerName", "ownerName is required")
	case org.Mobile == "":
		return validationError("mobile", "mobile is required")
	}
	if org.Status == "" {
		org.Status = model.StatusActive
	}
	if org.Status != model.StatusActive && org.Status != model.StatusInactive {
		return validationError("status", "status must be active or inactive")
	}
	return s.db.WithContext(ctx).Create(org).Error
}

func (s *gormStore) ListStudents(ctx context.Context) ([]model.Student, error) {
	students := []model.Student{}
	if err := s.db.WithContext(ctx).Order("id").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (s *gormStore) CreateStudent(ctx context.Context, student *model.Student) error {
	student.Name = strings.TrimSpace(student.Name)
	student.Mobile = strings.TrimSpace(student.Mobile)
	if student.Name == "" {
		return validationError("name", "name is required")
	}
	if student.Mobile == "" {
		return validationError("mobile", "mobile is required")
	}
	if student.Status == "" {
		student.Status = model.StudentActive
	}
	if !studentStatuses[student.Status] {
		return validationError("status", "status must be one of active, vacated, expelled")
	}
	return s.db.WithContext(ctx).Create(student).Error
}

// UpdateStudentPhoto stores the URL of an already uploaded photo.
func (s *gormStore) UpdateStudentPhoto(ctx context.Context, studentID int64, photoURL string) (*model.Student, error) {
	photoURL = strings.TrimSpace(photoURL)
	if photoURL == "" {
		return nil, validationError("photoUrl", "photoUrl is required")
	}

	var student model.Student
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&student, studentID).Error; err != nil {
			return notFoundOr(err, "student", studentID)
		}
		if err := tx.Model(&student).Update("photo_url", photoURL).Error; err != nil {
			return err
		}
		student.PhotoURL = &photoURL
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// SetStudentStatus changes a student's status. A student who still holds an
// active allocation stays active until it is vacated.
func (s *gormStore) SetStudentStatus(ctx context.Context, studentID int64, status string) (*model.Student, error) {
	if !studentStatuses[status] {
		return nil, validationError("status", "status must be one of active, vacated, expelled")
	}

	var student model.Student
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&student, studentID).Error; err != nil {
			return notFoundOr(err, "student", studentID)
		}
		if student.Status == status {
			return nil
		}
		if status != model.StudentActive {
			var active int64
			if err := tx.Model(&model.Allocation{}).
				Where("student_id = ? AND status = ?", studentID, model.AllocationActive).
				Count(&active).Error; err != nil {
				return err
			}
			if active > 0 {
				return conflictError("status", "student %d still holds an active allocation", studentID)
			}
		}
		if err := tx.Model(&student).Update("status", status).Error; err != nil {
			return err
		}
		student.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// CreateUser registers a dashboard account. Emails are unique ignoring case.
func (s *gormStore) CreateUser(ctx context.Context, user *model.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Email == "" {
		return validationError("email", "email is required")
	}
	if user.Role == "" {
		user.Role = string(rbac.Student)
	}
	if !rbac.Role(user.Role).Valid() {
		return validationError("role", "unknown role %q", user.Role)
	}

	err := s.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflictError("email", "user %s already exists", user.Email)
	}
	return err
}

// AssignUserRole replaces a user's role.
func (s *gormStore) AssignUserRole(ctx context.Context, userID int64, role rbac.Role) (*model.User, error) {
	if !role.Valid() {
		return nil, validationError("role", "unknown role %q", role)
	}

	var user model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			return notFoundOr(err, "user", userID)
		}
		if err := tx.Model(&user).Update("role", string(role)).Error; err != nil {
			return err
		}
		user.Role = string(role)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
