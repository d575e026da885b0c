package ai

import "fmt"

// DecompositionError 대본 분해 실패 (모델 호출 실패 또는 응답 파싱 실패)
// 일괄 생성 전체를 중단시키는 하드 에러. 패널 단위 렌더 실패와 구분됨
type DecompositionError struct {
	Err error
}

func (e *DecompositionError) Error() string {
	return fmt.Sprintf("script decomposition failed: %v", e.Err)
}

func (e *DecompositionError) Unwrap() error {
	return e.Err
}

// RenderError 이미지 렌더 실패. 해당 패널만 failed 처리
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("image render failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
