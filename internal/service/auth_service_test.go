package service

import (
	"testing"

	"github.com/hqtran/examportal/internal/apperr"
	"github.com/hqtran/examportal/internal/dto"
	"github.com/hqtran/examportal/internal/model"
	"github.com/hqtran/examportal/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) AuthService {
	return NewAuthService(
		repository.NewAdminRepository(db),
		repository.NewStudentRepository(db),
		NewTokenService(testConfig()),
	)
}

func TestRegisterAdmin_ThenLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	err := svc.RegisterAdmin(dto.AdminRegisterDTO{Email: "admin@school.edu", Password: "secret123"})
	if err != nil {
		t.Fatalf("RegisterAdmin: %v", err)
	}

	resp, err := svc.LoginAdmin(dto.AdminLoginDTO{Email: "admin@school.edu", Password: "secret123"})
	if err != nil {
		t.Fatalf("LoginAdmin: %v", err)
	}
	if resp.Token == "" || resp.Email != "admin@school.edu" {
		t.Fatalf("unexpected login response: %+v", resp)
	}

	claims, err := NewTokenService(testConfig()).Parse(resp.Token)
	if err != nil {
		t.Fatalf("Parse issued token: %v", err)
	}
	if claims.Role != RoleAdmin || claims.Subject != resp.ID {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterAdmin_DuplicateEmailConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	req := dto.AdminRegisterDTO{Email: "admin@school.edu", Password: "secret123"}
	if err := svc.RegisterAdmin(req); err != nil {
		t.Fatalf("RegisterAdmin: %v", err)
	}
	assertKind(t, svc.RegisterAdmin(req), apperr.KindConflict)
}

func TestRegisterAdmin_EmailReusableAfterDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	req := dto.AdminRegisterDTO{Email: "admin@school.edu", Password: "secret123"}
	if err := svc.RegisterAdmin(req); err != nil {
		t.Fatalf("RegisterAdmin: %v", err)
	}
	if err := db.Where("email = ?", req.Email).Delete(&model.Admin{}).Error; err != nil {
		t.Fatalf("delete admin: %v", err)
	}

	// The deleted account must not block re-registering the same email.
	if err := svc.RegisterAdmin(req); err != nil {
		t.Fatalf("re-register after delete: %v", err)
	}
}

func TestLoginAdmin_RejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	if err := svc.RegisterAdmin(dto.AdminRegisterDTO{Email: "admin@school.edu", Password: "secret123"}); err != nil {
		t.Fatalf("RegisterAdmin: %v", err)
	}

	_, err := svc.LoginAdmin(dto.AdminLoginDTO{Email: "admin@school.edu", Password: "wrong-pass"})
	assertKind(t, err, apperr.KindUnauthorized)

	_, err = svc.LoginAdmin(dto.AdminLoginDTO{Email: "nobody@school.edu", Password: "secret123"})
	assertKind(t, err, apperr.KindUnauthorized)
}

func TestLoginStudent_ByRegistrationNo(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	student := seedStudent(t, db, "REG001")
	hash, err := bcrypt.GenerateFromPassword([]byte("pass1234"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := db.Model(student).UpdateColumn("password_hash", string(hash)).Error; err != nil {
		t.Fatalf("set password: %v", err)
	}

	resp, err := svc.LoginStudent(dto.StudentLoginDTO{RegistrationNo: "REG001", Password: "pass1234"})
	if err != nil {
		t.Fatalf("LoginStudent: %v", err)
	}
	if resp.Token == "" || resp.Student.RegistrationNo != "REG001" {
		t.Fatalf("unexpected login response: %+v", resp)
	}

	_, err = svc.LoginStudent(dto.StudentLoginDTO{RegistrationNo: "REG001", Password: "wrong"})
	assertKind(t, err, apperr.KindUnauthorized)
}

func TestLoginStudent_NoPasswordSet(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	seedStudent(t, db, "REG001")

	// A student created without a password cannot log in until the admin
	// sets one.
	_, err := svc.LoginStudent(dto.StudentLoginDTO{RegistrationNo: "REG001", Password: ""})
	assertKind(t, err, apperr.KindUnauthorized)

	_, err = svc.LoginStudent(dto.StudentLoginDTO{RegistrationNo: "MISSING", Password: "x"})
	assertKind(t, err, apperr.KindNotFound)
}
