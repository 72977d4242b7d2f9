package appstub

import "sync"

// Account is a registered user with its editable profile.
type Account struct {
	Email    string
	Password string
	Name     string

	Username string
	Phone    string
	Avatar   string
}

// Accounts holds the registered users. The stub ships with two fixed
// accounts; registration is out of scope for it.
type Accounts struct {
	mu      sync.RWMutex
	byEmail map[string]*Account
}

// NewAccounts seeds the fixed accounts.
func NewAccounts() *Accounts {
	accounts := map[string]*Account{
		"test01@gmail.com": {
			Email:    "test01@gmail.com",
			Password: "123456",
			Name:     "Test User 1",
			Username: "testuser01",
			Phone:    "0987654321",
		},
		"test02@gmail.com": {
			Email:    "test02@gmail.com",
			Password: "123456",
			Name:     "Test User 2",
			Username: "testuser02",
			Phone:    "0912345678",
		},
	}
	return &Accounts{byEmail: accounts}
}

// Authenticate checks a credential pair.
func (a *Accounts) Authenticate(email, password string) (*Account, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	account, ok := a.byEmail[email]
	if !ok || account.Password != password {
		return nil, false
	}
	copied := *account
	return &copied, true
}

// Get returns the account for an email.
func (a *Accounts) Get(email string) (*Account, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	account, ok := a.byEmail[email]
	if !ok {
		return nil, false
	}
	copied := *account
	return &copied, true
}

// UpdateProfile overwrites the editable profile fields. Empty fields keep
// their current value.
func (a *Accounts) UpdateProfile(email, username, newEmail, phone string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	account, ok := a.byEmail[email]
	if !ok {
		return false
	}
	if username != "" {
		account.Username = username
	}
	if phone != "" {
		account.Phone = phone
	}
	if newEmail != "" && newEmail != email {
		account.Email = newEmail
		delete(a.byEmail, email)
		a.byEmail[newEmail] = account
	}
	return true
}

// SetAvatar records an uploaded avatar image name.
func (a *Accounts) SetAvatar(email, imageName string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if account, ok := a.byEmail[email]; ok {
		account.Avatar = imageName
	}
}

// stadiumsByClub is the dependent dropdown data: picking a club determines
// the stadiums on offer.
var stadiumsByClub = map[string][]string{
	"Shin":         {"Sân bóng Quân Đội", "Sân bóng đại học Mỏ"},
	"Arsenal FC":   {"Sân bóng Quân Đội", "Sân Hòa Lạc"},
	"Bren Esports": {"Sân bóng đại học Mỏ", "Sân Hòa Lạc"},
}

// clubNames returns the selectable clubs in a stable order.
func clubNames() []string {
	return []string{"Shin", "Arsenal FC", "Bren Esports"}
}

// stadiumsFor returns the stadiums a club can book, nil for unknown clubs.
func stadiumsFor(club string) []string {
	return stadiumsByClub[club]
}
