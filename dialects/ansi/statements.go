package ansi

import (
	"github.com/sqlglide/sqlglide/dialect"
	"github.com/sqlglide/sqlglide/matcher"
)

// registerStatements installs one production per statement kind plus the
// StatementSegment/FileSegment roots that tie them together. Each DDL
// statement is a thin Sequence over keywords and a reference/identifier; the
// goal is coverage of the statement-level shape the rule framework crawls,
// not a byte-for-byte reproduction of every dialect-specific clause.
func registerStatements(d *dialect.Dialect) {
	d.Register("SelectStatementSegment", matcher.NewSequence("select_statement",
		matcher.NewRef("SelectClauseSegment"),
		matcher.NewAnyNumberOf("", matcher.NewRef("FromClauseSegment")).WithTimes(0, 1),
		matcher.NewAnyNumberOf("", matcher.NewRef("WhereClauseSegment")).WithTimes(0, 1),
		matcher.NewAnyNumberOf("", matcher.NewRef("GroupByClauseSegment")).WithTimes(0, 1),
		matcher.NewAnyNumberOf("", matcher.NewRef("HavingClauseSegment")).WithTimes(0, 1),
		matcher.NewAnyNumberOf("", matcher.NewRef("OrderByClauseSegment")).WithTimes(0, 1),
		matcher.NewAnyNumberOf("", matcher.NewRef("LimitClauseSegment")).WithTimes(0, 1),
	))

	d.Register("ValuesClauseSegment", matcher.NewSequence("values_clause",
		d.Keyword("VALUES"),
		matcher.NewDelimited("values_clause_rows",
			matcher.NewBracketed("values_row_brackets",
				matcher.NewDelimited("values_row_elements", matcher.NewRef("ExpressionSegment"), matcher.NewTypedParser("comma")),
				"round"),
			matcher.NewTypedParser("comma")),
	))

	d.Register("InsertStatementSegment", matcher.NewSequence("insert_statement",
		d.Keyword("INSERT"), d.Keyword("INTO"),
		matcher.NewRef("TableReferenceSegment"),
		matcher.NewAnyNumberOf("", matcher.NewBracketed("insert_columns",
			matcher.NewDelimited("insert_column_list", matcher.NewRef("ColumnReferenceSegment"), matcher.NewTypedParser("comma")),
			"round")).WithTimes(0, 1),
		matcher.NewOneOf("insert_source", matcher.NewRef("ValuesClauseSegment"), matcher.NewRef("SelectStatementSegment")),
	))

	d.Register("SetClauseSegment", matcher.NewSequence("set_clause",
		matcher.NewRef("ColumnReferenceSegment"),
		matcher.NewTypedParser("equals"),
		matcher.NewRef("ExpressionSegment"),
	))

	d.Register("UpdateStatementSegment", matcher.NewSequence("update_statement",
		d.Keyword("UPDATE"),
		matcher.NewRef("TableReferenceSegment"),
		d.Keyword("SET"),
		matcher.NewDelimited("set_clause_list", matcher.NewRef("SetClauseSegment"), matcher.NewTypedParser("comma")),
		matcher.NewAnyNumberOf("", matcher.NewRef("WhereClauseSegment")).WithTimes(0, 1),
	))

	d.Register("DeleteStatementSegment", matcher.NewSequence("delete_statement",
		d.Keyword("DELETE"), d.Keyword("FROM"),
		matcher.NewRef("TableReferenceSegment"),
		matcher.NewAnyNumberOf("", matcher.NewRef("WhereClauseSegment")).WithTimes(0, 1),
	))

	d.Register("TruncateStatementSegment", matcher.NewSequence("truncate_statement",
		d.Keyword("TRUNCATE"),
		matcher.NewAnyNumberOf("", d.Keyword("TABLE")).WithTimes(0, 1),
		matcher.NewRef("TableReferenceSegment"),
	))

	d.Register("MergeMatchGrammar", matcher.NewSequence("merge_match",
		d.Keyword("WHEN"),
		matcher.NewAnyNumberOf("", d.Keyword("NOT")).WithTimes(0, 1),
		d.Keyword("MATCHED"),
		matcher.NewAnyNumberOf("", matcher.NewSequence("merge_match_condition", d.Keyword("AND"), matcher.NewRef("ExpressionSegment"))).WithTimes(0, 1),
		d.Keyword("THEN"),
		matcher.NewOneOf("merge_match_action",
			matcher.NewSequence("merge_update", d.Keyword("UPDATE"), d.Keyword("SET"),
				matcher.NewDelimited("merge_set_clause_list", matcher.NewRef("SetClauseSegment"), matcher.NewTypedParser("comma"))),
			matcher.NewSequence("merge_insert", d.Keyword("INSERT"), matcher.NewRef("ValuesClauseSegment")),
			d.Keyword("DELETE"),
		),
	))

	d.Register("MergeStatementSegment", matcher.NewSequence("merge_statement",
		d.Keyword("MERGE"),
		matcher.NewAnyNumberOf("", d.Keyword("INTO")).WithTimes(0, 1),
		matcher.NewRef("TableReferenceSegment"),
		matcher.NewAnyNumberOf("", matcher.NewRef("AliasExpressionSegment")).WithTimes(0, 1),
		d.Keyword("USING"),
		matcher.NewRef("FromExpressionElementSegment"),
		d.Keyword("ON"),
		matcher.NewRef("ExpressionSegment"),
		matcher.NewAnyNumberOf("", matcher.NewRef("MergeMatchGrammar")).WithTimes(0, 0),
	))

	d.Register("TransactionStatementSegment", matcher.NewSequence("transaction_statement",
		matcher.NewOneOf("transaction_keyword",
			matcher.NewSequence("begin", d.Keyword("BEGIN")),
			matcher.NewSequence("start_transaction", d.Keyword("START"), d.Keyword("TRANSACTION")),
			matcher.NewSequence("commit", d.Keyword("COMMIT")),
			matcher.NewSequence("rollback", d.Keyword("ROLLBACK")),
		),
	))

	// DDL battery: one shallow production per object kind, enough shape for
	// the rule framework to recognise and crawl a statement even though
	// this module does not model every dialect's full column-definition
	// grammar.
	registerCreateDropStatements(d)

	d.Register("StatementSegment", matcher.NewOneOf("StatementSegment",
		matcher.NewRef("SelectStatementSegment"),
		matcher.NewRef("InsertStatementSegment"),
		matcher.NewRef("UpdateStatementSegment"),
		matcher.NewRef("DeleteStatementSegment"),
		matcher.NewRef("MergeStatementSegment"),
		matcher.NewRef("TruncateStatementSegment"),
		matcher.NewRef("TransactionStatementSegment"),
		matcher.NewRef("CreateTableStatementSegment"),
		matcher.NewRef("CreateViewStatementSegment"),
		matcher.NewRef("CreateSchemaStatementSegment"),
		matcher.NewRef("CreateDatabaseStatementSegment"),
		matcher.NewRef("CreateIndexStatementSegment"),
		matcher.NewRef("CreateSequenceStatementSegment"),
		matcher.NewRef("CreateFunctionStatementSegment"),
		matcher.NewRef("CreateTriggerStatementSegment"),
		matcher.NewRef("CreateUserStatementSegment"),
		matcher.NewRef("CreateRoleStatementSegment"),
		matcher.NewRef("CreateModelStatementSegment"),
		matcher.NewRef("AlterTableStatementSegment"),
		matcher.NewRef("DropTableStatementSegment"),
		matcher.NewRef("DropViewStatementSegment"),
		matcher.NewRef("DropIndexStatementSegment"),
	))

	d.Register("FileSegment", matcher.NewDelimited("file",
		matcher.NewRef("StatementSegment"), matcher.NewTypedParser("semicolon"),
	).WithAllowTrailing())
}

// registerCreateDropStatements installs the DDL battery: CREATE for table,
// view, schema, database, user, role, index, sequence, function, model and
// trigger; DROP for table, view and index; ALTER for table. Each is a
// Sequence of keywords around an identifier or reference. No CAST grammar
// is registered, as a statement or as an expression: CAST is a reserved
// keyword, so FunctionSegment's naked-identifier name never matches it.
func registerCreateDropStatements(d *dialect.Dialect) {
	columnDefinition := matcher.NewSequence("column_definition",
		matcher.NewRef("SingleIdentifierGrammar"),
		matcher.NewRef("SingleIdentifierGrammar"),
	)

	d.Register("CreateTableStatementSegment", matcher.NewSequence("create_table_statement",
		d.Keyword("CREATE"),
		matcher.NewAnyNumberOf("", d.Keyword("OR"), d.Keyword("REPLACE")).WithTimes(0, 2),
		d.Keyword("TABLE"),
		matcher.NewAnyNumberOf("", d.Keyword("IF"), d.Keyword("NOT"), d.Keyword("EXISTS")).WithTimes(0, 3),
		matcher.NewRef("TableReferenceSegment"),
		matcher.NewBracketed("create_table_columns",
			matcher.NewDelimited("create_table_column_list", columnDefinition, matcher.NewTypedParser("comma")),
			"round"),
	))

	d.Register("CreateViewStatementSegment", matcher.NewSequence("create_view_statement",
		d.Keyword("CREATE"),
		matcher.NewAnyNumberOf("", d.Keyword("OR"), d.Keyword("REPLACE")).WithTimes(0, 2),
		d.Keyword("VIEW"),
		matcher.NewRef("ObjectReferenceSegment"),
		d.Keyword("AS"),
		matcher.NewRef("SelectStatementSegment"),
	))

	d.Register("CreateSchemaStatementSegment", matcher.NewSequence("create_schema_statement",
		d.Keyword("CREATE"), d.Keyword("SCHEMA"),
		matcher.NewAnyNumberOf("", d.Keyword("IF"), d.Keyword("NOT"), d.Keyword("EXISTS")).WithTimes(0, 3),
		matcher.NewRef("ObjectReferenceSegment"),
	))

	d.Register("CreateDatabaseStatementSegment", matcher.NewSequence("create_database_statement",
		d.Keyword("CREATE"), d.Keyword("DATABASE"),
		matcher.NewAnyNumberOf("", d.Keyword("IF"), d.Keyword("NOT"), d.Keyword("EXISTS")).WithTimes(0, 3),
		matcher.NewRef("SingleIdentifierGrammar"),
	))

	d.Register("CreateUserStatementSegment", matcher.NewSequence("create_user_statement",
		d.Keyword("CREATE"), d.Keyword("USER"),
		matcher.NewRef("SingleIdentifierGrammar"),
	))

	d.Register("CreateRoleStatementSegment", matcher.NewSequence("create_role_statement",
		d.Keyword("CREATE"), d.Keyword("ROLE"),
		matcher.NewRef("SingleIdentifierGrammar"),
	))

	d.Register("CreateIndexStatementSegment", matcher.NewSequence("create_index_statement",
		d.Keyword("CREATE"),
		matcher.NewAnyNumberOf("", d.Keyword("UNIQUE")).WithTimes(0, 1),
		d.Keyword("INDEX"),
		matcher.NewRef("SingleIdentifierGrammar"),
		d.Keyword("ON"),
		matcher.NewRef("TableReferenceSegment"),
		matcher.NewBracketed("create_index_columns",
			matcher.NewDelimited("create_index_column_list", matcher.NewRef("ColumnReferenceSegment"), matcher.NewTypedParser("comma")),
			"round"),
	))

	d.Register("CreateSequenceStatementSegment", matcher.NewSequence("create_sequence_statement",
		d.Keyword("CREATE"), d.Keyword("SEQUENCE"),
		matcher.NewRef("ObjectReferenceSegment"),
	))

	d.Register("CreateFunctionStatementSegment", matcher.NewSequence("create_function_statement",
		d.Keyword("CREATE"),
		matcher.NewAnyNumberOf("", d.Keyword("OR"), d.Keyword("REPLACE")).WithTimes(0, 2),
		d.Keyword("FUNCTION"),
		matcher.NewRef("ObjectReferenceSegment"),
		matcher.NewBracketed("create_function_params",
			matcher.NewAnyNumberOf("", matcher.NewDelimited("create_function_param_list", columnDefinition, matcher.NewTypedParser("comma"))).WithTimes(0, 1),
			"round"),
		d.Keyword("RETURNS"),
		matcher.NewRef("SingleIdentifierGrammar"),
	))

	d.Register("CreateModelStatementSegment", matcher.NewSequence("create_model_statement",
		d.Keyword("CREATE"),
		matcher.NewAnyNumberOf("", d.Keyword("OR"), d.Keyword("REPLACE")).WithTimes(0, 2),
		d.Keyword("MODEL"),
		matcher.NewRef("ObjectReferenceSegment"),
		d.Keyword("AS"),
		matcher.NewRef("SelectStatementSegment"),
	))

	d.Register("CreateTriggerStatementSegment", matcher.NewSequence("create_trigger_statement",
		d.Keyword("CREATE"), d.Keyword("TRIGGER"),
		matcher.NewRef("SingleIdentifierGrammar"),
		matcher.NewOneOf("trigger_timing", d.Keyword("BEFORE"), d.Keyword("AFTER")),
		matcher.NewOneOf("trigger_event", d.Keyword("INSERT"), d.Keyword("UPDATE"), d.Keyword("DELETE")),
		d.Keyword("ON"),
		matcher.NewRef("TableReferenceSegment"),
	))

	d.Register("AlterTableStatementSegment", matcher.NewSequence("alter_table_statement",
		d.Keyword("ALTER"), d.Keyword("TABLE"),
		matcher.NewRef("TableReferenceSegment"),
		matcher.NewOneOf("alter_table_action",
			matcher.NewSequence("add_column", d.Keyword("ADD"), d.Keyword("COLUMN"), columnDefinition),
			matcher.NewSequence("drop_column", d.Keyword("DROP"), d.Keyword("COLUMN"), matcher.NewRef("SingleIdentifierGrammar")),
			matcher.NewSequence("rename_to", d.Keyword("RENAME"), d.Keyword("TO"), matcher.NewRef("SingleIdentifierGrammar")),
		),
	))

	d.Register("DropTableStatementSegment", matcher.NewSequence("drop_table_statement",
		d.Keyword("DROP"), d.Keyword("TABLE"),
		matcher.NewAnyNumberOf("", d.Keyword("IF"), d.Keyword("EXISTS")).WithTimes(0, 2),
		matcher.NewRef("TableReferenceSegment"),
	))

	d.Register("DropViewStatementSegment", matcher.NewSequence("drop_view_statement",
		d.Keyword("DROP"), d.Keyword("VIEW"),
		matcher.NewAnyNumberOf("", d.Keyword("IF"), d.Keyword("EXISTS")).WithTimes(0, 2),
		matcher.NewRef("ObjectReferenceSegment"),
	))

	d.Register("DropIndexStatementSegment", matcher.NewSequence("drop_index_statement",
		d.Keyword("DROP"), d.Keyword("INDEX"),
		matcher.NewAnyNumberOf("", d.Keyword("IF"), d.Keyword("EXISTS")).WithTimes(0, 2),
		matcher.NewRef("SingleIdentifierGrammar"),
	))
}
