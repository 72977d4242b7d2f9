package testdata

// Match is the input record for the create-match form. Empty fields are left
// unfilled by the page object.
type Match struct {
	Club          string
	Stadium       string
	Date          string
	Time          string
	ContactNumber string
	Description   string
}

// Clubs known to the application.
var Clubs = struct {
	Shin    string
	Arsenal string
	Bren    string
}{
	Shin:    "Shin",
	Arsenal: "Arsenal FC",
	Bren:    "Bren Esports",
}

// Stadiums known to the application.
var Stadiums = struct {
	QuanDoi  string
	DaiHocMo string
	HoaLac   string
}{
	QuanDoi:  "Sân bóng Quân Đội",
	DaiHocMo: "Sân bóng đại học Mỏ",
	HoaLac:   "Sân Hòa Lạc",
}

// Matches covers the valid and per-field-missing create-match inputs.
var Matches = struct {
	Valid          Match
	Valid2         Match
	Minimal        Match
	MissingStadium Match
	MissingClub    Match
	MissingDate    Match
	MissingTime    Match
	PastDate       Match
	InvalidContact Match
	SpecialChars   Match
}{
	Valid: Match{
		Club: Clubs.Shin, Stadium: Stadiums.QuanDoi,
		Date: "12/31/2026", Time: "06:00 PM",
		ContactNumber: "0987654321", Description: "Trận đấu giao hữu",
	},
	Valid2: Match{
		Club: Clubs.Shin, Stadium: Stadiums.QuanDoi,
		Date: "01/15/2027", Time: "07:00 PM",
		ContactNumber: "0912345678", Description: "Trận đấu giao hữu cuối tuần",
	},
	Minimal: Match{
		Club: Clubs.Shin, Stadium: Stadiums.QuanDoi,
		Date: "12/31/2026", Time: "06:00 PM",
		ContactNumber: "0987654321",
	},
	MissingStadium: Match{
		Club: Clubs.Shin,
		Date: "12/31/2026", Time: "06:00 PM",
		ContactNumber: "0987654321", Description: "Trận đấu thiếu địa điểm",
	},
	MissingClub: Match{
		Stadium: Stadiums.QuanDoi,
		Date:    "12/31/2026", Time: "06:00 PM",
		ContactNumber: "0987654321", Description: "Trận đấu thiếu CLB",
	},
	MissingDate: Match{
		Club: Clubs.Shin, Stadium: Stadiums.QuanDoi,
		Time: "06:00 PM", ContactNumber: "0987654321",
		Description: "Trận đấu thiếu ngày",
	},
	MissingTime: Match{
		Club: Clubs.Shin, Stadium: Stadiums.QuanDoi,
		Date: "12/31/2026", ContactNumber: "0987654321",
		Description: "Trận đấu thiếu giờ",
	},
	PastDate: Match{
		Club: Clubs.Shin, Stadium: Stadiums.QuanDoi,
		Date: "01/01/2020", Time: "06:00 PM",
		ContactNumber: "0987654321", Description: "Trận đấu với ngày quá khứ",
	},
	InvalidContact: Match{
		Club: Clubs.Shin, Stadium: Stadiums.QuanDoi,
		Date: "12/31/2026", Time: "06:00 PM",
		ContactNumber: "123", Description: "Trận đấu với SĐT không hợp lệ",
	},
	SpecialChars: Match{
		Club: Clubs.Shin, Stadium: Stadiums.QuanDoi,
		Date: "12/31/2026", Time: "06:00 PM",
		ContactNumber: "0987654321", Description: "Trận đấu @#$%^&*() với ký tự đặc biệt",
	},
}
