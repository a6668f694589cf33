// Package vocab defines the six preference questions and their answer enumerations.
//
// Each answer is an enumeration whose value is the short code stored in the catalog
// (for example "하" or "밝음"). The long descriptive sentence shown in the form is only a
// display label attached to that value, so there is no label-keyed lookup table that can
// fail silently.
package vocab

// Difficulty is how much care the owner is willing to give.
type Difficulty string

const (
	DifficultyLow    Difficulty = "하"
	DifficultyMedium Difficulty = "중"
	DifficultyHigh   Difficulty = "상"
)

var difficultyOptions = []Option{
	{Code: string(DifficultyLow), Label: "매우 귀찮음 (물 주기를 자주 잊어요) 😴"},
	{Code: string(DifficultyMedium), Label: "보통 (주 1~2회 정도는 봐줄 수 있어요) 🪴"},
	{Code: string(DifficultyHigh), Label: "열정적 (매일 상태를 확인하고 싶어요) ✨"},
}

// Valid reports whether the code is one of the answer options.
func (d Difficulty) Valid() bool { return hasCode(difficultyOptions, string(d)) }

// Light is the amount of light available where the plant will live.
type Light string

const (
	LightBright Light = "밝음"
	LightMedium Light = "중간"
	LightLow    Light = "낮음"
)

var lightOptions = []Option{
	{Code: string(LightBright), Label: "빛이 하루 종일 잘 드는 창가 ☀️"},
	{Code: string(LightMedium), Label: "간접광이 들어오는 실내 중간 🌥️"},
	{Code: string(LightLow), Label: "어둡거나 빛이 거의 없는 곳 🌑"},
}

func (l Light) Valid() bool { return hasCode(lightOptions, string(l)) }

// Size is the mature height class of the plant.
type Size string

const (
	SizeSmall  Size = "소"
	SizeMedium Size = "중"
	SizeLarge  Size = "대"
)

var sizeOptions = []Option{
	{Code: string(SizeSmall), Label: "15cm 이하 (책상 위, 작은 선반용) 🤏"},
	{Code: string(SizeMedium), Label: "15cm 초과 ~ 30cm 이하 (중형 스탠드) 📏"},
	{Code: string(SizeLarge), Label: "30cm 초과 (바닥 배치, 코너 공간) 🌳"},
}

func (s Size) Valid() bool { return hasCode(sizeOptions, string(s)) }

// AirPurifying is how strongly the plant cleans indoor air.
type AirPurifying string

const (
	AirHigh   AirPurifying = "높음"
	AirNormal AirPurifying = "보통"
	AirLow    AirPurifying = "낮음"
)

var airOptions = []Option{
	{Code: string(AirHigh), Label: "공기 정화 능력이 높음"},
	{Code: string(AirNormal), Label: "일반적인 공기 정화 수준"},
	{Code: string(AirLow), Label: "기능보다 관상 목적"},
}

func (a AirPurifying) Valid() bool { return hasCode(airOptions, string(a)) }

// PetSafety says whether the plant is safe around pets and children.
type PetSafety string

const (
	PetSafe    PetSafety = "안전"
	PetCaution PetSafety = "주의"
)

var petOptions = []Option{
	{Code: string(PetSafe), Label: "반려동물/아이에게 안전함 ✅"},
	{Code: string(PetCaution), Label: "섭취 시 주의 필요 ⚠️"},
}

func (p PetSafety) Valid() bool { return hasCode(petOptions, string(p)) }

// GrowthSpeed is how quickly the plant outgrows its pot.
type GrowthSpeed string

const (
	GrowthSlow   GrowthSpeed = "느림"
	GrowthNormal GrowthSpeed = "보통"
	GrowthFast   GrowthSpeed = "빠름"
)

var growthOptions = []Option{
	{Code: string(GrowthSlow), Label: "성장이 매우 느려 분갈이가 거의 필요 없음 🐌"},
	{Code: string(GrowthNormal), Label: "보통 속도로 관리하기 적당함 🌳"},
	{Code: string(GrowthFast), Label: "성장이 빨라 자주 가지치기/분갈이가 필요함 🌱"},
}

func (g GrowthSpeed) Valid() bool { return hasCode(growthOptions, string(g)) }

func labelOf(opts []Option, code string) string {
	for _, o := range opts {
		if o.Code == code {
			return o.Label
		}
	}
	return code
}

func hasCode(opts []Option, code string) bool {
	for _, o := range opts {
		if o.Code == code {
			return true
		}
	}
	return false
}
