package render

import (
	"fmt"

	"github.com/duynguyendang/plantcurator/pkg/vocab"
)

// Placeholders for optional record fields.
const (
	NoManagementTip    = "팁 정보 없음"
	NoDiscolorationTip = "대처 팁 정보 없음"
	NoImageRegistered  = "🖼️ 등록된 이미지가 없습니다."
)

// Fixed notices.
const (
	SelectAllPrompt = "모든 질문에 답변을 선택해주세요."
	ResultsHeader   = "✅ 추천 결과"
	PageTitle       = "🌿 성향 맞춤 실내 식물 큐레이션"
	PageSubtitle    = "당신의 관리 성향, 환경, 목적에 가장 적합한 식물을 찾아드립니다."
)

// CatalogMissing is shown when the catalog file does not exist.
func CatalogMissing(path, name string) string {
	return fmt.Sprintf("오류: %s 파일을 찾을 수 없습니다. JSON 파일 이름(%s)을 확인해주세요.", path, name)
}

// CatalogUnreadable is shown when the catalog file exists but cannot be parsed.
func CatalogUnreadable(path string, err error) string {
	return fmt.Sprintf("오류: %s 파일을 읽을 수 없습니다. 파일 형식을 확인해주세요. (%v)", path, err)
}

// ExactFound announces exact-mode results.
func ExactFound(n int) string {
	return fmt.Sprintf("🎊 조건에 맞는 식물 중 상위 %d개를 추천합니다! (최대 3개)", n)
}

// ExactNone is shown when no record matches every answer.
func ExactNone() string {
	return fmt.Sprintf("😭 %d가지 조건에 모두 맞는 식물은 찾지 못했어요. 조건을 완화해보세요!", vocab.NumQuestions)
}

// ScoredFound announces scored-mode results.
func ScoredFound(n int) string {
	return fmt.Sprintf("🎊 일치하는 조건이 많은 순서로 상위 %d개를 추천합니다! (최대 3개)", n)
}

// ScoredNone is shown when no record matches even a single answer.
func ScoredNone() string {
	return fmt.Sprintf("😭 조건에 맞는 식물을 찾지 못했어요. (일치 %s)", FormatScore(0))
}

// ImageNotFound warns that a record's image file is absent.
func ImageNotFound(path string) string {
	return fmt.Sprintf("🖼️ 이미지 파일을 찾을 수 없습니다: %s", path)
}

// FormatScore renders a match count out of the number of questions.
func FormatScore(n int) string {
	return fmt.Sprintf("%d/%d", n, vocab.NumQuestions)
}
