package entities

// Districts фиксированный список районов сети. Приглашение district_admin
// возможно только в район из этого списка.
var Districts = []string{
	"Alappuzha",
	"Ernakulam",
	"Idukki",
	"Kannur",
	"Kasaragod",
	"Kollam",
	"Kottayam",
	"Kozhikode",
	"Malappuram",
	"Palakkad",
	"Pathanamthitta",
	"Thiruvananthapuram",
	"Thrissur",
	"Wayanad",
}

func IsValidDistrict(district string) bool {
	for _, d := range Districts {
		if d == district {
			return true
		}
	}
	return false
}
