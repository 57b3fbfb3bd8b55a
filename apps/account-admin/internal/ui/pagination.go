package ui

import "fmt"

// DefaultPageSize は一覧画面の1ページあたりの件数
const DefaultPageSize = 50

// Pagination は一覧画面のページ位置を管理する。
type Pagination struct {
	TotalItems  int
	PageSize    int
	CurrentPage int
}

// NewPagination は新しいPaginationを生成する。
func NewPagination(pageSize int) *Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pagination{PageSize: pageSize, CurrentPage: 1}
}

// SetTotalItems は総件数を設定し、ページ位置を範囲内に収める。
func (p *Pagination) SetTotalItems(total int) {
	p.TotalItems = total
	p.CurrentPage = min(max(p.CurrentPage, 1), p.TotalPages())
}

// TotalPages は総ページ数を返す。0件の場合も1ページとする。
func (p *Pagination) TotalPages() int {
	if p.TotalItems == 0 {
		return 1
	}
	return (p.TotalItems + p.PageSize - 1) / p.PageSize
}

// NextPage は次のページに移動する。移動できた場合はtrueを返す。
func (p *Pagination) NextPage() bool {
	if p.CurrentPage >= p.TotalPages() {
		return false
	}
	p.CurrentPage++
	return true
}

// PrevPage は前のページに移動する。移動できた場合はtrueを返す。
func (p *Pagination) PrevPage() bool {
	if p.CurrentPage <= 1 {
		return false
	}
	p.CurrentPage--
	return true
}

// FirstPage は最初のページに移動する。
func (p *Pagination) FirstPage() {
	p.CurrentPage = 1
}

// Info はタイトルに表示するページ情報を返す。
func (p *Pagination) Info() string {
	if p.TotalItems == 0 {
		return "No items"
	}
	start := (p.CurrentPage-1)*p.PageSize + 1
	end := min(p.CurrentPage*p.PageSize, p.TotalItems)
	return fmt.Sprintf("%d-%d of %d (Page %d/%d)", start, end, p.TotalItems, p.CurrentPage, p.TotalPages())
}

// PageItems は現在のページに表示する要素を返す。
func PageItems[T any](items []T, p *Pagination) []T {
	p.SetTotalItems(len(items))
	start := (p.CurrentPage - 1) * p.PageSize
	if start >= len(items) {
		return []T{}
	}
	end := min(start+p.PageSize, len(items))
	return items[start:end]
}
