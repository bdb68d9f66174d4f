package user

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"campus_chat_server/internal/dao/mysql/repository"
	"campus_chat_server/internal/dto/request"
	"campus_chat_server/internal/model"
	"campus_chat_server/pkg/errorx"
)

// fakeUserRepo 内存用户存储替身
type fakeUserRepo struct {
	users map[string]*model.UserInfo
}

func (r *fakeUserRepo) FindByUsername(username string) (*model.UserInfo, error) {
	if u, ok := r.users[username]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "用户不存在")
}

func (r *fakeUserRepo) Exists(username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *fakeUserRepo) Create(user *model.UserInfo) error {
	cp := *user
	r.users[user.Username] = &cp
	return nil
}

func newTestService() (*userService, *fakeUserRepo) {
	users := &fakeUserRepo{users: make(map[string]*model.UserInfo)}
	repos := repository.NewRepositoriesWith(users, nil, nil, nil)
	return NewUserService(repos), users
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, users := newTestService()

	rsp, err := svc.Register(request.RegisterRequest{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rsp.Username != "alice" {
		t.Fatalf("rsp.Username = %q", rsp.Username)
	}

	stored := users.users["alice"]
	if stored == nil {
		t.Fatal("用户未落库")
	}
	if stored.Password == "secret123" {
		t.Fatal("密码以明文存储")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")); err != nil {
		t.Fatalf("存储的密码哈希无法验证: %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(request.RegisterRequest{Username: "alice", Password: "secret123"}); err != nil {
		t.Fatalf("第一次注册: %v", err)
	}

	_, err := svc.Register(request.RegisterRequest{Username: "alice", Password: "other456"})
	var codeErr *errorx.CodeError
	if !errors.As(err, &codeErr) || codeErr.Code != errorx.CodeUserExist {
		t.Fatalf("expected CodeUserExist, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Login(request.LoginRequest{Username: "ghost", Password: "x"}); !errors.Is(err, errorx.ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(request.RegisterRequest{Username: "alice", Password: "secret123"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Login(request.LoginRequest{Username: "alice", Password: "wrong"})
	var codeErr *errorx.CodeError
	if !errors.As(err, &codeErr) || codeErr.Code != errorx.CodeInvalidPassword {
		t.Fatalf("expected CodeInvalidPassword, got %v", err)
	}
}

func TestExists(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(request.RegisterRequest{Username: "alice", Password: "secret123"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	exists, err := svc.Exists("alice")
	if err != nil || !exists {
		t.Fatalf("Exists(alice) = %v, %v", exists, err)
	}
	exists, err = svc.Exists("ghost")
	if err != nil || exists {
		t.Fatalf("Exists(ghost) = %v, %v", exists, err)
	}
}
