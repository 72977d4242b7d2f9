// Package testdata holds the fixed test input records and the generators for
// unique values. Records are immutable inputs; nothing in the suite mutates
// them.
package testdata

// User is a credential record for login tests.
type User struct {
	Email    string
	Password string
	Name     string
}

// Users covers the valid, invalid and adversarial login inputs.
var Users = struct {
	Valid1             User
	Valid2             User
	InvalidEmail       User
	InvalidPassword    User
	EmptyEmail         User
	EmptyPassword      User
	InvalidEmailFormat User
	ShortPassword      User
	SQLInjection       User
	XSSAttack          User
	SpecialChars       User
	LongEmail          User
	LongPassword       User
	Unicode            User
}{
	Valid1:             User{Email: "test01@gmail.com", Password: "123456", Name: "Test User 1"},
	Valid2:             User{Email: "test02@gmail.com", Password: "123456", Name: "Test User 2"},
	InvalidEmail:       User{Email: "invalid@example.com", Password: "Test@123456"},
	InvalidPassword:    User{Email: "test01@gmail.com", Password: "wrongpassword"},
	EmptyEmail:         User{Email: "", Password: "Test@123456"},
	EmptyPassword:      User{Email: "test01@gmail.com", Password: ""},
	InvalidEmailFormat: User{Email: "not-an-email", Password: "Test@123456"},
	ShortPassword:      User{Email: "test01@gmail.com", Password: "123"},
	SQLInjection:       User{Email: "admin' OR '1'='1", Password: "' OR '1'='1"},
	XSSAttack:          User{Email: `<script>alert("XSS")</script>@test.com`, Password: `<script>alert("XSS")</script>`},
	SpecialChars:       User{Email: "test+special@example.com", Password: "Test@#$%^&*()123"},
	LongEmail:          User{Email: repeat("a", 100) + "@example.com", Password: "Test@123456"},
	LongPassword:       User{Email: "test01@gmail.com", Password: repeat("A", 200)},
	Unicode:            User{Email: "test@ví-dụ.com", Password: "Mật-Khẩu-123"},
}

func repeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for range n {
		out = append(out, s...)
	}
	return string(out)
}
