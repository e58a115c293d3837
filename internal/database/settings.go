package database

import "context"

func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	value, err := withDBContextResult(d, ctx, func(ctx context.Context) (*string, error) {
		var value *string
		err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
		return value, err
	})
	if err != nil || value == nil {
		return "", false
	}
	return *value, true
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
		return wrapErr(EntitySetting, "set", 0, err)
	})
}
