package models

import "filmorate/proj/internal/storage/postgres"

type Models struct {
	Film   *FilmModel
	User   *UserModel
	Like   *LikeModel
	Friend *FriendModel
	Genre  *GenreModel
	Mpa    *MpaModel
}

func New(db *postgres.PostgresDB) *Models {
	return &Models{
		Film:   &FilmModel{db.Conn},
		User:   &UserModel{db.Conn},
		Like:   &LikeModel{db.Conn},
		Friend: &FriendModel{db.Conn},
		Genre:  &GenreModel{db.Conn},
		Mpa:    &MpaModel{db.Conn},
	}
}
