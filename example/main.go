package main

import (
	"context"
	"log"
	"os"

	"github.com/pthm/wcmp"
	"go.uber.org/zap"

	"github.com/pthm/wcmp/example/components"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync() //nolint:errcheck

	reg := wcmp.NewRegistry(wcmp.WithDevMode(true), wcmp.WithLogger(logger))
	wcmp.SetDefault(reg)

	if err := components.Register(reg); err != nil {
		logger.Fatal("register components", zap.Error(err))
	}

	store := NewStore()
	ctx := components.WithStore(context.Background(), store)

	// Toggle the first todo through its element's public method.
	item, err := reg.CreateElement("todo-item", components.TodoItemClass)
	if err != nil {
		logger.Fatal("create todo-item", zap.Error(err))
	}
	first := store.List(nil)[0]
	if err := item.Set("todoId", first.ID); err != nil {
		logger.Fatal("set todoId", zap.Error(err))
	}
	if err := item.Set("title", first.Title); err != nil {
		logger.Fatal("set title", zap.Error(err))
	}
	if _, err := item.Call(ctx, "toggle"); err != nil {
		logger.Fatal("toggle", zap.Error(err))
	}

	list, err := reg.CreateElement("todo-list", components.TodoListClass)
	if err != nil {
		logger.Fatal("create todo-list", zap.Error(err))
	}
	if err := list.Set("title", "All tasks"); err != nil {
		logger.Fatal("set title", zap.Error(err))
	}
	if err := components.Provision(list, store); err != nil {
		logger.Fatal("provision", zap.Error(err))
	}

	for _, el := range []*wcmp.HostElement{item, list} {
		if err := el.Connect(ctx); err != nil {
			logger.Fatal("connect", zap.String("tag", el.Tag()), zap.Error(err))
		}
		if err := wcmp.Outer(el).Render(ctx, os.Stdout); err != nil {
			logger.Fatal("render", zap.String("tag", el.Tag()), zap.Error(err))
		}
		os.Stdout.WriteString("\n")
	}

	def, err := reg.GetComponentDef(components.TodoListClass)
	if err != nil {
		logger.Fatal("definition", zap.Error(err))
	}
	logger.Info("todo list definition",
		zap.String("name", def.Name),
		zap.Strings("props", def.Props),
		zap.Strings("wire", def.WireNames()),
	)
}
