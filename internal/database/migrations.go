package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
var migrationsSQL = map[int]string{
	1: migrationV1Occasions,
	2: migrationV2OfficialHolidays,
}

// migrationV1Occasions creates the occasions table.
//
// Occasions are keyed by Jalali month and day. year = 0 marks an occasion
// that recurs every Jalali year; any other value pins it to that year.
// Using 0 instead of NULL keeps the UNIQUE constraint effective, since SQLite
// treats NULLs as distinct.
const migrationV1Occasions = `
CREATE TABLE IF NOT EXISTS occasions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    year INTEGER NOT NULL DEFAULT 0,
    month INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
    day INTEGER NOT NULL CHECK (day BETWEEN 1 AND 31),

    title TEXT NOT NULL,
    is_holiday INTEGER NOT NULL DEFAULT 0 CHECK (is_holiday IN (0, 1)),

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now')),

    UNIQUE (year, month, day, title)
);

CREATE INDEX IF NOT EXISTS idx_occasions_month_day
    ON occasions(month, day);

CREATE INDEX IF NOT EXISTS idx_occasions_year
    ON occasions(year);
`

// migrationV2OfficialHolidays seeds the official holidays that fall on fixed
// solar dates. Lunar (Hijri Qamari) holidays move every year and are added
// per year by administrators.
const migrationV2OfficialHolidays = `
INSERT OR IGNORE INTO occasions (year, month, day, title, is_holiday) VALUES
    (0, 1, 1, 'Nowruz', 1),
    (0, 1, 2, 'Nowruz', 1),
    (0, 1, 3, 'Nowruz', 1),
    (0, 1, 4, 'Nowruz', 1),
    (0, 1, 12, 'Islamic Republic Day', 1),
    (0, 1, 13, 'Nature Day', 1),
    (0, 3, 14, 'Demise of Imam Khomeini', 1),
    (0, 3, 15, 'Khordad 15 Uprising', 1),
    (0, 11, 22, 'Islamic Revolution Victory Day', 1),
    (0, 12, 29, 'Oil Industry Nationalization Day', 1);
`
