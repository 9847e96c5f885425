package main

import (
	"fmt"
	"log"

	"github.com/sqlbridge/sqlbridge/sqlstmt"
	"github.com/sqlbridge/sqlbridge/sqltype"
	"github.com/sqlbridge/sqlbridge/sqlvalue"
)

func main() {
	id := sqlstmt.NewColumnDef("id", sqltype.BigIntUnsigned)
	id.SetAutoIncrement(true).SetNotNull(true)

	name := sqlstmt.NewColumnDef("name", sqltype.VarChar(64))
	name.SetNotNull(true)

	active := sqlstmt.NewColumnDef("active", sqltype.Boolean)
	if err := active.SetDefault(sqlvalue.Bool(true)); err != nil {
		log.Fatalf("set default: %v", err)
	}

	use, err := sqlstmt.NewUseDatabase("demo")
	if err != nil {
		log.Fatalf("use database: %v", err)
	}
	create, err := sqlstmt.NewCreateTable("users", id, name, active)
	if err != nil {
		log.Fatalf("create table: %v", err)
	}

	for _, stmt := range []sqlstmt.Statement{use, create} {
		text, err := stmt.SQL()
		if err != nil {
			log.Fatalf("render: %v", err)
		}
		fmt.Println(text)
	}
}
