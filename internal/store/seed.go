package store

import (
	"context"
	"log/slog"
)

const placeholderImage = "/placeholder.svg?height=400&width=600"

// Catalog is the fixed set of items loaded into an empty store.
var Catalog = []NewItem{
	{ItemFields{"에어 조던 1", "농구화에서 시작해 스트릿 패션 아이콘이 된 클래식 스니커즈", placeholderImage, "신발"}, 120, 45},
	{ItemFields{"컨버스 척 테일러", "100년 이상의 역사를 가진 캔버스 스니커즈", placeholderImage, "신발"}, 200, 30},
	{ItemFields{"아디다스 스탠 스미스", "깔끔한 디자인의 클래식 테니스화", placeholderImage, "신발"}, 180, 60},
	{ItemFields{"오버사이즈 후드티", "편안한 착용감의 캐주얼 후드티", placeholderImage, "의류"}, 150, 70},
	{ItemFields{"슬림핏 데님 청바지", "모든 스타일에 어울리는 기본 청바지", placeholderImage, "의류"}, 90, 110},
	{ItemFields{"베이직 티셔츠", "부드러운 코튼 소재의 기본 티셔츠", placeholderImage, "의류"}, 130, 50},
	{ItemFields{"가죽 시계", "클래식한 디자인의 가죽 스트랩 시계", placeholderImage, "악세사리"}, 110, 40},
	{ItemFields{"실버 목걸이", "심플한 디자인의 실버 펜던트 목걸이", placeholderImage, "악세사리"}, 95, 65},
	{ItemFields{"캔버스 백팩", "일상 사용에 적합한 내구성 있는 백팩", placeholderImage, "악세사리"}, 85, 75},
}

// SeedIfEmpty loads Catalog when the items table is empty and reports
// whether it did.
//
// There is no "already seeded" marker: a store whose items were all
// deleted is seeded again the next time this runs.
func (s *Store) SeedIfEmpty(ctx context.Context) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, storageErr("beginning seed transaction", err)
	}
	defer tx.Rollback()

	var n int64
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		return false, storageErr("counting items", err)
	}
	if n > 0 {
		return false, nil
	}

	stmt, err := tx.PrepareContext(ctx, s.q(
		`INSERT INTO items (name, description, image, category, selects, passes)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	))
	if err != nil {
		return false, storageErr("preparing seed insert", err)
	}
	defer stmt.Close()

	for _, item := range Catalog {
		if _, err := stmt.ExecContext(ctx,
			item.Name, item.Description, item.Image, item.Category, item.Selects, item.Passes,
		); err != nil {
			return false, storageErr("seeding "+item.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, storageErr("committing seed", err)
	}

	slog.Info("seeded empty store", "items", len(Catalog))
	return true, nil
}
