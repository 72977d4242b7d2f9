package testdata

// Team is the input record for club creation.
type Team struct {
	Name        string
	Description string
	ImagePath   string
}

// Teams covers valid and per-field-missing club inputs.
var Teams = struct {
	Valid        Team
	MissingName  Team
	MissingImage Team
	LongName     Team
}{
	Valid:        Team{Name: "CLB Mùa Xuân", Description: "Câu lạc bộ giao hữu cuối tuần", ImagePath: UploadImage()},
	MissingName:  Team{Description: "Thiếu tên CLB", ImagePath: UploadImage()},
	MissingImage: Team{Name: "CLB Thiếu Ảnh", Description: "Thiếu hình ảnh"},
	LongName:     Team{Name: repeat("Tên Rất Dài ", 20), Description: "Tên quá dài", ImagePath: UploadImage()},
}

// Profile is the input record for user-profile edits.
type Profile struct {
	Username string
	Email    string
	Phone    string
}

// Profiles covers valid and invalid profile updates.
var Profiles = struct {
	Valid        Profile
	InvalidEmail Profile
	InvalidPhone Profile
}{
	Valid:        Profile{Username: "nguyenvana", Email: "test01@gmail.com", Phone: "0987654321"},
	InvalidEmail: Profile{Email: "abc@"},
	InvalidPhone: Profile{Phone: "123"},
}
