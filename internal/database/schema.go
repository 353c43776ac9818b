package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Statements mirror the production schema, including the seller FK added by the
// 01_add_vendedor_fk migration and the unidade_medida column from 02.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS utilizadores (
		id SERIAL PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		senha_hash VARCHAR(255) NOT NULL,
		perfil VARCHAR(10) NOT NULL DEFAULT 'USER',
		nickname VARCHAR(100),
		telefone VARCHAR(20),
		CONSTRAINT utilizadores_email_key UNIQUE (email),
		CONSTRAINT utilizadores_nickname_key UNIQUE (nickname),
		CONSTRAINT utilizadores_telefone_key UNIQUE (telefone)
	)`,
	`CREATE TABLE IF NOT EXISTS clientes (
		id SERIAL PRIMARY KEY,
		nome VARCHAR(255) NOT NULL,
		contato VARCHAR(20) NOT NULL,
		nome_responsavel VARCHAR(255),
		telefone_whatsapp BOOLEAN NOT NULL DEFAULT FALSE,
		logradouro VARCHAR(255),
		quadra VARCHAR(50),
		lote VARCHAR(50),
		bairro VARCHAR(100),
		cep VARCHAR(10),
		ponto_referencia VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS produtos (
		id SERIAL PRIMARY KEY,
		nome VARCHAR(255) NOT NULL,
		descricao TEXT,
		preco NUMERIC(10,2) NOT NULL,
		unidade_medida VARCHAR(10) NOT NULL DEFAULT 'kg'
	)`,
	`CREATE TABLE IF NOT EXISTS movimentacoes (
		id SERIAL PRIMARY KEY,
		tipo VARCHAR(10) NOT NULL,
		cliente_id INTEGER,
		descricao VARCHAR(255) NOT NULL,
		data DATE NOT NULL,
		valor NUMERIC(10,2) NOT NULL,
		categoria VARCHAR(50),
		peso NUMERIC(10,3),
		data_pagamento DATE,
		data_vencimento DATE,
		preco_manual NUMERIC(10,2),
		responsavel_venda_id INTEGER,
		CONSTRAINT fk_responsavel_venda FOREIGN KEY (responsavel_venda_id)
			REFERENCES utilizadores (id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS despesas (
		id SERIAL PRIMARY KEY,
		tipo_saida VARCHAR(100) NOT NULL,
		discriminacao TEXT,
		nome_recebedor VARCHAR(255),
		data_pagamento DATE,
		data_vencimento DATE,
		forma_pagamento VARCHAR(50),
		valor NUMERIC(10,2) NOT NULL,
		responsavel_pagamento VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS produto_sugestoes (
		id SERIAL PRIMARY KEY,
		descricao_livre VARCHAR(255) NOT NULL,
		produto_nome VARCHAR(255) NOT NULL,
		CONSTRAINT produto_sugestoes_descricao_key UNIQUE (descricao_livre)
	)`,
}

// EnsureSchema creates any missing tables. Statements are idempotent, so the
// call is safe on every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensuring schema: %w", err)
		}
	}

	return nil
}
