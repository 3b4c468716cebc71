// Package cities holds the dashboard's selectable city registry.
package cities

// City is one selectable location. QueryName is passed verbatim to the
// provider's q= parameter; NameKo is the display name for the picker.
type City struct {
	ID        string `json:"id"`
	NameKo    string `json:"nameKo"`
	QueryName string `json:"nameEn"`
}

// DefaultCityID is used when the picker sends no or an unknown city id.
const DefaultCityID = "seoul"

// All is the list of Korean cities the provider recognizes, in picker order.
var All = []City{
	{ID: "seoul", NameKo: "서울", QueryName: "Seoul"},
	{ID: "busan", NameKo: "부산", QueryName: "Busan"},
	{ID: "incheon", NameKo: "인천", QueryName: "Incheon"},
	{ID: "daegu", NameKo: "대구", QueryName: "Daegu"},
	{ID: "daejeon", NameKo: "대전", QueryName: "Daejeon"},
	{ID: "gwangju", NameKo: "광주", QueryName: "Gwangju"},
	{ID: "ulsan", NameKo: "울산", QueryName: "Ulsan"},
	{ID: "suwon", NameKo: "수원", QueryName: "Suwon"},
	{ID: "changwon", NameKo: "창원", QueryName: "Changwon"},
	{ID: "jeonju", NameKo: "전주", QueryName: "Jeonju"},
	{ID: "cheongju", NameKo: "청주", QueryName: "Cheongju"},
	{ID: "cheonan", NameKo: "천안", QueryName: "Cheonan"},
	{ID: "pohang", NameKo: "포항", QueryName: "Pohang"},
	{ID: "jeju", NameKo: "제주", QueryName: "Jeju City"},
	{ID: "gangneung", NameKo: "강릉", QueryName: "Gangneung"},
}

// ByID returns the city for the given id, falling back to Seoul when the id
// is unknown. The dashboard never errors on a stale query string.
func ByID(id string) City {
	for _, c := range All {
		if c.ID == id {
			return c
		}
	}
	return All[0]
}
